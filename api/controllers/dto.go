package controllers

import (
	"github.com/adamolayo/vatcart-backend/internal/cart"
	"github.com/adamolayo/vatcart-backend/internal/catalog"
	"github.com/adamolayo/vatcart-backend/pkg/vat"
	"github.com/shopspring/decimal"
)

// productDTO is the wire shape of a catalog entry. Field names follow the
// persisted blob contract (camelCase); amounts travel as decimal strings.
type productDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	VATRate        decimal.Decimal `json:"vatRate"`
	VATLabel       string          `json:"vatLabel"`
	PriceFormatted string          `json:"priceFormatted"`
	IsCustom       bool            `json:"isCustom"`
}

func toProductDTO(p catalog.Product) productDTO {
	return productDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		BasePrice:      p.BasePrice,
		VATRate:        p.VATRate,
		VATLabel:       p.VATLabel(),
		PriceFormatted: vat.FormatNaira(p.BasePrice),
		IsCustom:       p.IsCustom(),
	}
}

func toProductDTOs(products []catalog.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

type catalogListingDTO struct {
	State    string       `json:"state"`
	Count    int          `json:"count"`
	Products []productDTO `json:"products"`
}

type quoteLineDTO struct {
	ProductID          string          `json:"productId"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	VATLabel           string          `json:"vatLabel"`
	BasePrice          decimal.Decimal `json:"basePrice"`
	VATRate            decimal.Decimal `json:"vatRate"`
	VATAmount          decimal.Decimal `json:"vatAmount"`
	Total              decimal.Decimal `json:"total"`
	BasePriceFormatted string          `json:"basePriceFormatted"`
	VATFormatted       string          `json:"vatFormatted"`
	TotalFormatted     string          `json:"totalFormatted"`
}

type quoteDTO struct {
	CatalogState        string          `json:"catalogState"`
	Lines               []quoteLineDTO  `json:"lines"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TotalVAT            decimal.Decimal `json:"totalVat"`
	GrandTotal          decimal.Decimal `json:"grandTotal"`
	SubtotalFormatted   string          `json:"subtotalFormatted"`
	TotalVATFormatted   string          `json:"totalVatFormatted"`
	GrandTotalFormatted string          `json:"grandTotalFormatted"`
}

func toQuoteDTO(result *cart.QuoteResult) quoteDTO {
	quote := result.Quote
	lines := make([]quoteLineDTO, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, quoteLineDTO{
			ProductID:          line.ProductID,
			Name:               line.Name,
			Category:           line.Category,
			VATLabel:           line.VATLabel,
			BasePrice:          line.BasePrice,
			VATRate:            line.VATRate,
			VATAmount:          line.VATAmount,
			Total:              line.Total,
			BasePriceFormatted: vat.FormatNaira(line.BasePrice),
			VATFormatted:       vat.FormatNaira(line.VATAmount),
			TotalFormatted:     vat.FormatNaira(line.Total),
		})
	}
	return quoteDTO{
		CatalogState:        string(result.CatalogState),
		Lines:               lines,
		Subtotal:            quote.Subtotal,
		TotalVAT:            quote.TotalVAT,
		GrandTotal:          quote.GrandTotal,
		SubtotalFormatted:   vat.FormatNaira(quote.Subtotal),
		TotalVATFormatted:   vat.FormatNaira(quote.TotalVAT),
		GrandTotalFormatted: vat.FormatNaira(quote.GrandTotal),
	}
}
