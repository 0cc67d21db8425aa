package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
)

type baseSource interface {
	Snapshot() Snapshot
}

type customLister interface {
	List(ctx context.Context) ([]Product, error)
}

// Service exposes the merged catalog to the HTTP layer and to cart
// aggregation.
type Service interface {
	List(ctx context.Context, query, category string) (*Listing, error)
	Categories(ctx context.Context) ([]string, error)
	Merged(ctx context.Context) ([]Product, State, error)
}

// Listing is a filtered catalog view plus the base-catalog state so a
// client can distinguish an empty result from one that is still loading.
type Listing struct {
	State    State
	Products []Product
}

type service struct {
	base   baseSource
	custom customLister
}

// NewService builds the catalog service from the base-catalog source and
// the custom product store.
func NewService(base baseSource, custom customLister) (Service, error) {
	if base == nil {
		return nil, fmt.Errorf("base catalog source required")
	}
	if custom == nil {
		return nil, fmt.Errorf("custom product lister required")
	}
	return &service{base: base, custom: custom}, nil
}

func (s *service) List(ctx context.Context, query, category string) (*Listing, error) {
	merged, state, err := s.Merged(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		State:    state,
		Products: Filter(merged, query, category),
	}, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	merged, _, err := s.Merged(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(merged), nil
}

// Merged returns the full unfiltered catalog. A failed or still-loading
// base fetch does not block custom products from being served; the state
// tells the caller what the base portion reflects.
func (s *service) Merged(ctx context.Context) ([]Product, State, error) {
	snap := s.base.Snapshot()

	custom, err := s.custom.List(ctx)
	if err != nil {
		return nil, snap.State, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list custom products")
	}

	return Merge(snap.Products, custom), snap.State, nil
}
