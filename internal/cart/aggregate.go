package cart

import (
	"github.com/adamolayo/vatcart-backend/internal/catalog"
	"github.com/adamolayo/vatcart-backend/pkg/vat"
	"github.com/shopspring/decimal"
)

// Line is one priced cart entry.
type Line struct {
	ProductID string
	Name      string
	Category  string
	VATLabel  string
	BasePrice decimal.Decimal
	VATRate   decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// Quote is the priced view of a selection. Totals are sums of the already
// rounded per-line values, so the grand total always reconciles exactly
// with the sum of displayed line totals.
type Quote struct {
	Lines      []Line
	Subtotal   decimal.Decimal
	TotalVAT   decimal.Decimal
	GrandTotal decimal.Decimal
}

// Aggregate resolves the selected ids against the merged catalog and prices
// each resolved line. Ids with no match are dropped: a stale selection left
// behind by a deleted custom product is expected, not an error. The
// selection is a set; duplicate ids count once. Line order follows catalog
// order, which keeps quotes deterministic.
func Aggregate(merged []catalog.Product, selectedIDs []string) Quote {
	selected := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	quote := Quote{
		Lines:      []Line{},
		Subtotal:   decimal.Zero,
		TotalVAT:   decimal.Zero,
		GrandTotal: decimal.Zero,
	}

	for _, p := range merged {
		if _, ok := selected[p.ID]; !ok {
			continue
		}

		amount := vat.Amount(p.BasePrice, p.VATRate)
		total := vat.Total(p.BasePrice, p.VATRate)

		quote.Lines = append(quote.Lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			VATLabel:  p.VATLabel(),
			BasePrice: p.BasePrice,
			VATRate:   p.VATRate,
			VATAmount: amount,
			Total:     total,
		})

		quote.Subtotal = quote.Subtotal.Add(p.BasePrice)
		quote.TotalVAT = quote.TotalVAT.Add(amount)
	}

	quote.GrandTotal = quote.Subtotal.Add(quote.TotalVAT)
	return quote
}
