package catalog

import (
	"github.com/adamolayo/vatcart-backend/pkg/vat"
	"github.com/shopspring/decimal"
)

// Seed returns the built-in base catalog served when no external catalog
// URL is configured. It mirrors the Nigerian VAT treatments: standard-rated
// services at 7.5%, zero-rated supplies at 0%, and exempt supplies under
// the reserved "Exempt" category.
func Seed() []Product {
	price := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	zero := decimal.Zero

	return []Product{
		{ID: "svc-001", Name: "Tax Advisory", Description: "Corporate and personal tax planning consultation", Category: "Professional Services", BasePrice: price(50000), VATRate: vat.StandardRate, Source: SourceBase},
		{ID: "svc-002", Name: "Audit & Assurance", Description: "Statutory financial statement audit engagement", Category: "Professional Services", BasePrice: price(250000), VATRate: vat.StandardRate, Source: SourceBase},
		{ID: "svc-003", Name: "Payroll Processing", Description: "Monthly payroll administration and PAYE remittance", Category: "Professional Services", BasePrice: price(35000), VATRate: vat.StandardRate, Source: SourceBase},
		{ID: "svc-004", Name: "Company Registration", Description: "CAC incorporation filing and documentation", Category: "Business Services", BasePrice: price(75000), VATRate: vat.StandardRate, Source: SourceBase},
		{ID: "svc-005", Name: "Brand Design Package", Description: "Logo, stationery and brand guideline design", Category: "Creative Services", BasePrice: price(120000), VATRate: vat.StandardRate, Source: SourceBase},
		{ID: "svc-006", Name: "Basic Food Supply", Description: "Bulk supply of unprocessed staple food items", Category: "Food", BasePrice: price(18000), VATRate: zero, Source: SourceBase},
		{ID: "svc-007", Name: "Export Logistics", Description: "Freight forwarding for goods exported from Nigeria", Category: "Logistics", BasePrice: price(95000), VATRate: zero, Source: SourceBase},
		{ID: "svc-008", Name: "Medical Consultation", Description: "General practitioner consultation session", Category: "Exempt", BasePrice: price(15000), VATRate: zero, Source: SourceBase},
		{ID: "svc-009", Name: "Tuition Services", Description: "Accredited educational tuition per term", Category: "Exempt", BasePrice: price(80000), VATRate: zero, Source: SourceBase},
		{ID: "svc-010", Name: "Pharmaceutical Supply", Description: "Supply of registered essential medicines", Category: "Exempt", BasePrice: price(22000), VATRate: zero, Source: SourceBase},
	}
}
