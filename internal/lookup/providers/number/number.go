// Package number normalizes phone-number lookup replies.
package number

import (
	"github.com/tidwall/gjson"

	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers"
	"idlookup/internal/lookup/providers/fields"
)

// Upstream key fallbacks per NumberRecord field, most specific first.
var (
	mobileKeys    = []string{"international_format", "mobile_international"}
	fatherKeys    = []string{"father_name", "fname", "father"}
	addressKeys   = []string{"address"}
	altMobileKeys = []string{"alt_mobile", "alternate_mobile", "alt"}
	circleKeys    = []string{"circle_isp", "circle", "carrier"}
	aadharKeys    = []string{"aadhar", "aadhaar", "id_number"}
	emailKeys     = []string{"email"}
)

// Normalize maps a raw upstream body to a NumberRecord.
// query is the validated 10-digit input and backs Mobile when the upstream omits it.
//
// Errors: KindNotFound unless status is "success" and data.name is present.
func Normalize(body []byte, query string) (*models.NumberRecord, error) {
	root := gjson.ParseBytes(body)

	status := root.Get("status")
	data := root.Get("data")
	if status.Type != gjson.String || status.Str != "success" || !fields.Truthy(data) {
		return nil, notFound()
	}

	name := fields.StringOr(data, "", "name")
	if name == "" {
		return nil, notFound()
	}

	mobile := fields.StringOr(data, query, mobileKeys...)
	if mobile == "" {
		mobile = models.Unknown
	}

	return &models.NumberRecord{
		Mobile:    mobile,
		Name:      name,
		Father:    fields.StringOr(data, models.Unknown, fatherKeys...),
		Address:   fields.StringOr(data, models.Unknown, addressKeys...),
		AltMobile: fields.StringOr(data, models.Unknown, altMobileKeys...),
		CircleISP: fields.StringOr(data, models.Unknown, circleKeys...),
		Aadhar:    fields.StringOr(data, models.Unknown, aadharKeys...),
		Email:     fields.StringOr(data, models.Unknown, emailKeys...),
	}, nil
}

func notFound() error {
	return providers.NewLookupError(providers.KindNotFound, models.CategoryNumber, providers.MsgNumberNotFound, nil)
}
