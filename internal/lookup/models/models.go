// Package models holds the normalized lookup records returned to callers.
package models

import (
	"fmt"
	"strings"
)

// Category names one of the independent search domains.
type Category string

const (
	CategoryIdentity Category = "identity"
	CategoryNumber   Category = "number"
)

// Unknown marks a NumberRecord field the upstream did not provide.
const Unknown = "-"

// Categories lists every supported category in display order.
func Categories() []Category {
	return []Category{CategoryIdentity, CategoryNumber}
}

// ParseCategory maps a path segment to a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryIdentity, CategoryNumber:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// DigitCount is the exact query length accepted for the category.
func (c Category) DigitCount() int {
	switch c {
	case CategoryIdentity:
		return 12
	case CategoryNumber:
		return 10
	default:
		return 0
	}
}

func (c Category) String() string { return string(c) }

// Member is one household member attached to an identity record.
type Member struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
}

// IdentityRecord is the normalized identity-number lookup result.
// Address is always non-empty; optional fields are "" when absent.
type IdentityRecord struct {
	Address      string   `json:"address"`
	District     string   `json:"district"`
	State        string   `json:"state"`
	Scheme       string   `json:"scheme"`
	AllowedOnOrc string   `json:"allowedOnOrc"`
	Members      []Member `json:"members"`
}

// NumberRecord is the normalized phone-number lookup result.
// Every field holds Unknown when the upstream had no value.
type NumberRecord struct {
	Mobile    string `json:"mobile"`
	Name      string `json:"name"`
	Father    string `json:"father"`
	Address   string `json:"address"`
	AltMobile string `json:"altMobile"`
	CircleISP string `json:"circleIsp"`
	Aadhar    string `json:"aadhar"`
	Email     string `json:"email"`
}
