package handler

import "idlookup/internal/lookup/models"

// SearchResponse is the body of a successful lookup.
type SearchResponse[R any] struct {
	Category models.Category `json:"category"`
	Record   *R              `json:"record"`
	History  []string        `json:"history"`
}

// HistoryResponse lists a category's recent queries.
type HistoryResponse struct {
	Category models.Category `json:"category"`
	Entries  []string        `json:"entries"`
}
