package cart

import (
	"context"
	"fmt"

	"github.com/adamolayo/vatcart-backend/internal/catalog"
)

type catalogSource interface {
	Merged(ctx context.Context) ([]catalog.Product, catalog.State, error)
}

// Service prices cart selections against the current merged catalog.
type Service interface {
	Quote(ctx context.Context, selectedIDs []string) (*QuoteResult, error)
}

// QuoteResult pairs the priced quote with the base-catalog state so a
// caller knows whether base products were available when pricing ran.
type QuoteResult struct {
	Quote        Quote
	CatalogState catalog.State
}

type service struct {
	catalog catalogSource
}

// NewService builds a cart service over the merged catalog source.
func NewService(catalogSvc catalogSource) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog source required")
	}
	return &service{catalog: catalogSvc}, nil
}

func (s *service) Quote(ctx context.Context, selectedIDs []string) (*QuoteResult, error) {
	merged, state, err := s.catalog.Merged(ctx)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{
		Quote:        Aggregate(merged, selectedIDs),
		CatalogState: state,
	}, nil
}
