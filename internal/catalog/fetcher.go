package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/adamolayo/vatcart-backend/pkg/config"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
)

// State is the tri-state of the base catalog fetch. Callers must be able to
// tell "still loading" apart from "legitimately empty".
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// Snapshot is the immutable view of the base catalog at some point in time.
type Snapshot struct {
	State    State
	Products []Product
	Err      error
}

// Fetcher performs the one-shot base catalog fetch and exposes the
// resulting snapshot. It does not retry on its own; callers decide whether
// to invoke Load again.
type Fetcher struct {
	url    string
	client *http.Client
	logg   *logger.Logger

	mu   sync.RWMutex
	snap Snapshot
}

// NewFetcher builds a fetcher in the loading state.
func NewFetcher(cfg config.CatalogConfig, logg *logger.Logger) *Fetcher {
	return &Fetcher{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		logg:   logg,
		snap:   Snapshot{State: StateLoading},
	}
}

// Load fetches the base catalog and updates the snapshot. With no URL
// configured the built-in seed is served immediately. Honors ctx
// cancellation: an abandoned fetch records the error state instead of
// updating products after the caller moved on.
func (f *Fetcher) Load(ctx context.Context) error {
	if f.url == "" {
		f.setReady(Seed())
		if f.logg != nil {
			f.logg.Info(ctx, "serving built-in base catalog")
		}
		return nil
	}

	products, err := f.fetch(ctx)
	if err != nil {
		f.setError(err)
		if f.logg != nil {
			f.logg.Error(ctx, "base catalog fetch failed", err)
		}
		return err
	}

	f.setReady(products)
	if f.logg != nil {
		f.logg.Info(f.logg.WithField(ctx, "products", len(products)), "base catalog loaded")
	}
	return nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding catalog payload: %w", err)
	}

	for i := range products {
		products[i].Source = SourceBase
	}
	return products, nil
}

// Snapshot returns a copy of the current catalog view.
func (f *Fetcher) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := Snapshot{State: f.snap.State, Err: f.snap.Err}
	out.Products = make([]Product, len(f.snap.Products))
	copy(out.Products, f.snap.Products)
	return out
}

func (f *Fetcher) setReady(products []Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = Snapshot{State: StateReady, Products: products}
}

func (f *Fetcher) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = Snapshot{State: StateError, Err: err}
}
