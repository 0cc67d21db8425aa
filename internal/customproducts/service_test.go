package customproducts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/adamolayo/vatcart-backend/internal/catalog"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/adamolayo/vatcart-backend/pkg/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "vatcart:custom_products"

// seqIDs hands out deterministic id suffixes.
type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%04d", s.n)
}

func newTestService(t *testing.T, store *kv.MemoryStore) Service {
	t.Helper()
	svc, err := NewService(context.Background(), Params{
		Store: store,
		Key:   testKey,
		IDs:   &seqIDs{},
	})
	require.NoError(t, err)
	return svc
}

func validDraft() Draft {
	return Draft{
		Name:      "Tax Advisory",
		Category:  "Services",
		BasePrice: decimal.NewFromInt(5000),
		VATRate:   decimal.NewFromFloat(7.5),
	}
}

func TestNewServiceRequiresStoreAndKey(t *testing.T) {
	_, err := NewService(context.Background(), Params{Key: testKey})
	require.Error(t, err)

	_, err = NewService(context.Background(), Params{Store: kv.NewMemoryStore()})
	require.Error(t, err)
}

func TestCreateAssignsPrefixedIDAndPersists(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	product, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.ID, catalog.CustomIDPrefix))
	assert.True(t, product.IsCustom())
	assert.Equal(t, "Tax Advisory", product.Name)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, product.ID, listed[0].ID)

	// The persisted blob deserializes back to an equal sequence.
	blob, err := store.Load(ctx, testKey)
	require.NoError(t, err)
	var persisted []catalog.Product
	require.NoError(t, json.Unmarshal(blob, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, product.ID, persisted[0].ID)
	assert.True(t, persisted[0].BasePrice.Equal(product.BasePrice))
	assert.True(t, persisted[0].VATRate.Equal(product.VATRate))
}

func TestCreateValidatesDraft(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name  string
		draft Draft
	}{
		{name: "empty name", draft: Draft{Category: "Services", BasePrice: decimal.NewFromInt(1)}},
		{name: "empty category", draft: Draft{Name: "X", BasePrice: decimal.NewFromInt(1)}},
		{name: "negative price", draft: Draft{Name: "X", Category: "Services", BasePrice: decimal.NewFromInt(-1)}},
		{name: "rate above 100", draft: Draft{Name: "X", Category: "Services", VATRate: decimal.NewFromInt(101)}},
		{name: "negative rate", draft: Draft{Name: "X", Category: "Services", VATRate: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.draft)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
		})
	}

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed, "failed creates must not change state")
}

func TestCreateAppendsInCreationOrder(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	first, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)
	draft := validDraft()
	draft.Name = "Second Service"
	second, err := svc.Create(ctx, draft)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestUpdatePreservesIDAndPosition(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	first, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	patch := validDraft()
	patch.Name = "Renamed"
	patch.VATRate = decimal.Zero
	patch.Category = "Exempt"

	updated, err := svc.Update(ctx, first.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Exempt", updated.Category)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, "Renamed", listed[0].Name)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	_, err := svc.Update(context.Background(), "custom-missing", validDraft())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteRemovesAndSecondDeleteFails(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	product, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID))

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed, "failed delete must leave state unchanged")
}

func TestMutationRollsBackOnSaveFailure(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	product, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	store.SaveErr = errors.New("disk full")

	_, err = svc.Create(ctx, validDraft())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodePersistence))

	err = svc.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodePersistence))

	// In-memory state still matches the last successfully persisted blob.
	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, product.ID, listed[0].ID)
}

func TestListIsCopyOnRead(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	product, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	listed[0].Name = "mutated"

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, product.Name, again[0].Name)
}

func TestListIdempotent(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReloadFromPersistedBlob(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	// A fresh service over the same substrate sees the same sequence.
	reloaded, err := NewService(ctx, Params{Store: store, Key: testKey})
	require.NoError(t, err)

	listed, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, catalog.SourceCustom, listed[0].Source)
}

func TestCorruptBlobInitializesEmpty(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Seed(testKey, []byte(`{not json`))

	svc, err := NewService(context.Background(), Params{Store: store, Key: testKey})
	require.NoError(t, err, "corrupt blob must not be fatal")

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
