// Package identity normalizes identity-number lookup replies.
//
// Upstreams answer in two shapes: a nested {"data": {...}} envelope and a flat
// object. Failures come back as {"status": false, "msg": "..."}.
package identity

import (
	"github.com/tidwall/gjson"

	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers"
	"idlookup/internal/lookup/providers/fields"
)

// Normalize maps a raw upstream body to an IdentityRecord.
//
// Errors: KindNotFound when the upstream reports status false; KindInvalidResponse
// when the payload has no address.
func Normalize(body []byte, _ string) (*models.IdentityRecord, error) {
	root := gjson.ParseBytes(body)

	if status := root.Get("status"); status.Type == gjson.False {
		msg := fields.StringOr(root, providers.MsgIdentityNotFound, "msg")
		return nil, providers.NewLookupError(providers.KindNotFound, models.CategoryIdentity, msg, nil)
	}

	payload := root
	if data := root.Get("data"); fields.Truthy(data) {
		payload = data
	}

	address := fields.StringOr(payload, "", "address")
	if address == "" {
		return nil, providers.NewLookupError(
			providers.KindInvalidResponse,
			models.CategoryIdentity,
			providers.MsgInvalidResponse,
			nil,
		)
	}

	return &models.IdentityRecord{
		Address:      address,
		District:     fields.StringOr(payload, "", "homeDistName", "district"),
		State:        fields.StringOr(payload, "", "homeStateName", "state"),
		Scheme:       fields.StringOr(payload, "", "schemeName", "scheme"),
		AllowedOnOrc: fields.StringOr(payload, "", "allowed_onorc", "allowedOnOrc"),
		Members:      members(payload),
	}, nil
}

// members prefers memberDetailsList, then the legacy members array.
func members(payload gjson.Result) []models.Member {
	if list := payload.Get("memberDetailsList"); list.IsArray() {
		out := make([]models.Member, 0, len(list.Array()))
		for _, m := range list.Array() {
			out = append(out, models.Member{
				Name:     fields.StringOr(m, "", "memberName"),
				Relation: fields.StringOr(m, "", "releationship_name"),
			})
		}
		return out
	}

	if list := payload.Get("members"); list.IsArray() {
		out := make([]models.Member, 0, len(list.Array()))
		for _, m := range list.Array() {
			out = append(out, models.Member{
				Name:     fields.StringOr(m, "", "memName", "name"),
				Relation: fields.StringOr(m, "", "relation"),
			})
		}
		return out
	}

	return []models.Member{}
}
