package catalog

import (
	"strings"

	"github.com/adamolayo/vatcart-backend/pkg/vat"
	"github.com/shopspring/decimal"
)

// CustomIDPrefix marks user-authored products. The prefix stays on the wire
// and in persisted blobs so older blobs and clients keep working; the
// Source tag is the authoritative provenance signal in-process.
const CustomIDPrefix = "custom-"

// Source tags a product's provenance.
type Source string

const (
	SourceBase   Source = "base"
	SourceCustom Source = "custom"
)

// Product is one catalog entry. BasePrice is tax-exclusive naira; VATRate
// is a percentage in [0, 100]. A zero rate means zero-rated unless the
// category is the reserved "Exempt" value.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	Source      Source          `json:"-"`
}

// IsCustom reports whether the product is user-authored. The Source tag
// wins; the id prefix is the fallback for records that predate the tag.
func (p Product) IsCustom() bool {
	if p.Source != "" {
		return p.Source == SourceCustom
	}
	return strings.HasPrefix(p.ID, CustomIDPrefix)
}

// VATLabel returns the display label for the product's VAT treatment.
func (p Product) VATLabel() string {
	return vat.Classify(p.VATRate, p.Category)
}
