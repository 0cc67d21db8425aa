package customproducts

import (
	"strings"

	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Draft carries the user-supplied fields for a custom product. The id is
// never part of a draft; the store owns identity.
type Draft struct {
	Name        string
	Description string
	Category    string
	BasePrice   decimal.Decimal
	VATRate     decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

func (d Draft) validate() error {
	details := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		details["name"] = "is required"
	}
	if strings.TrimSpace(d.Category) == "" {
		details["category"] = "is required"
	}
	if d.BasePrice.IsNegative() {
		details["basePrice"] = "must be non-negative"
	}
	if d.VATRate.IsNegative() || d.VATRate.GreaterThan(oneHundred) {
		details["vatRate"] = "must be between 0 and 100"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid product draft").WithDetails(details)
	}
	return nil
}
