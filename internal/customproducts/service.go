// Package customproducts owns the lifecycle of user-authored catalog
// entries. Every mutation durably persists the full sequence before it is
// acknowledged; a failed save rolls the in-memory state back so memory and
// storage never diverge silently.
package customproducts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/adamolayo/vatcart-backend/internal/catalog"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/adamolayo/vatcart-backend/pkg/kv"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
	"github.com/google/uuid"
)

// idRetries bounds the defensive regeneration loop on id collision.
const idRetries = 5

// IDSource produces the unique suffix appended to the custom id prefix.
type IDSource interface {
	NewID() string
}

type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.NewString() }

// Service exposes the custom product lifecycle.
type Service interface {
	Create(ctx context.Context, draft Draft) (catalog.Product, error)
	Update(ctx context.Context, id string, draft Draft) (catalog.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]catalog.Product, error)
}

// Params wires the store's injected dependencies.
type Params struct {
	Store  kv.Store
	Key    string
	IDs    IDSource
	Logger *logger.Logger
}

type service struct {
	store kv.Store
	key   string
	ids   IDSource
	logg  *logger.Logger

	mu       sync.Mutex
	products []catalog.Product
}

// NewService builds the store and loads persisted state. An absent or
// corrupt blob initializes to an empty sequence; corruption is logged, not
// fatal. An unreachable substrate is fatal.
func NewService(ctx context.Context, p Params) (Service, error) {
	if p.Store == nil {
		return nil, fmt.Errorf("persistence store required")
	}
	if strings.TrimSpace(p.Key) == "" {
		return nil, fmt.Errorf("persistence key required")
	}
	if p.IDs == nil {
		p.IDs = uuidSource{}
	}

	s := &service{
		store: p.Store,
		key:   p.Key,
		ids:   p.IDs,
		logg:  p.Logger,
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) load(ctx context.Context) error {
	blob, err := s.store.Load(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		s.products = []catalog.Product{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading custom products: %w", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(blob, &products); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "custom product blob is corrupt, starting empty")
		}
		s.products = []catalog.Product{}
		return nil
	}

	for i := range products {
		products[i].Source = catalog.SourceCustom
	}
	s.products = products
	return nil
}

func (s *service) Create(ctx context.Context, draft Draft) (catalog.Product, error) {
	if err := draft.validate(); err != nil {
		return catalog.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID()
	if err != nil {
		return catalog.Product{}, err
	}

	product := catalog.Product{
		ID:          id,
		Name:        strings.TrimSpace(draft.Name),
		Description: draft.Description,
		Category:    strings.TrimSpace(draft.Category),
		BasePrice:   draft.BasePrice,
		VATRate:     draft.VATRate,
		Source:      catalog.SourceCustom,
	}

	next := make([]catalog.Product, len(s.products), len(s.products)+1)
	copy(next, s.products)
	next = append(next, product)

	if err := s.persist(ctx, next); err != nil {
		return catalog.Product{}, err
	}

	s.products = next
	if s.logg != nil {
		s.logg.Info(s.logg.WithProductID(ctx, product.ID), "custom product created")
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, id string, draft Draft) (catalog.Product, error) {
	if err := draft.validate(); err != nil {
		return catalog.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return catalog.Product{}, notFound(id)
	}

	// Position and id are preserved; only draft fields change.
	next := make([]catalog.Product, len(s.products))
	copy(next, s.products)
	next[idx].Name = strings.TrimSpace(draft.Name)
	next[idx].Description = draft.Description
	next[idx].Category = strings.TrimSpace(draft.Category)
	next[idx].BasePrice = draft.BasePrice
	next[idx].VATRate = draft.VATRate

	if err := s.persist(ctx, next); err != nil {
		return catalog.Product{}, err
	}

	s.products = next
	return next[idx], nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return notFound(id)
	}

	next := make([]catalog.Product, 0, len(s.products)-1)
	next = append(next, s.products[:idx]...)
	next = append(next, s.products[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.products = next
	if s.logg != nil {
		s.logg.Info(s.logg.WithProductID(ctx, id), "custom product deleted")
	}
	return nil
}

// List returns a copy-on-read snapshot in creation order.
func (s *service) List(_ context.Context) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// persist saves the candidate sequence without touching s.products; callers
// commit only after the save succeeded.
func (s *service) persist(ctx context.Context, products []catalog.Product) error {
	blob, err := json.Marshal(products)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "serialize custom products")
	}
	if err := s.store.Save(ctx, s.key, blob); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "save custom products")
	}
	return nil
}

func (s *service) freshID() (string, error) {
	for i := 0; i < idRetries; i++ {
		id := catalog.CustomIDPrefix + s.ids.NewID()
		if s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeConflict, "could not allocate a unique product id")
}

func (s *service) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "custom product not found").
		WithDetails(map[string]string{"id": id})
}
