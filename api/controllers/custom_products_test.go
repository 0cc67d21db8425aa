package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/adamolayo/vatcart-backend/internal/catalog"
	"github.com/adamolayo/vatcart-backend/internal/customproducts"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
)

type stubCustomProductService struct {
	product  catalog.Product
	products []catalog.Product
	err      error

	gotID    string
	gotDraft customproducts.Draft
}

func (s *stubCustomProductService) Create(_ context.Context, draft customproducts.Draft) (catalog.Product, error) {
	s.gotDraft = draft
	return s.product, s.err
}

func (s *stubCustomProductService) Update(_ context.Context, id string, draft customproducts.Draft) (catalog.Product, error) {
	s.gotID = id
	s.gotDraft = draft
	return s.product, s.err
}

func (s *stubCustomProductService) Delete(_ context.Context, id string) error {
	s.gotID = id
	return s.err
}

func (s *stubCustomProductService) List(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCustomProductCreateSuccess(t *testing.T) {
	created := catalog.Product{
		ID:        "custom-abc",
		Name:      "Soap Making Class",
		Category:  "Training",
		BasePrice: decimal.NewFromInt(15000),
		VATRate:   decimal.NewFromFloat(7.5),
		Source:    catalog.SourceCustom,
	}
	svc := &stubCustomProductService{product: created}
	handler := CustomProductCreate(svc, nil)

	body := `{"name":"Soap Making Class","category":"Training","basePrice":"15000","vatRate":"7.5"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/custom-products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotDraft.Name != "Soap Making Class" {
		t.Fatalf("draft name not forwarded: %q", svc.gotDraft.Name)
	}
	if !svc.gotDraft.BasePrice.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("draft price not forwarded: %s", svc.gotDraft.BasePrice)
	}

	var envelope struct {
		Data productDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != "custom-abc" || !envelope.Data.IsCustom {
		t.Fatalf("unexpected product payload: %+v", envelope.Data)
	}
}

func TestCustomProductCreateMissingName(t *testing.T) {
	svc := &stubCustomProductService{}
	handler := CustomProductCreate(svc, nil)

	body := `{"category":"Training","basePrice":"100","vatRate":"7.5"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/custom-products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCustomProductCreateUnknownField(t *testing.T) {
	svc := &stubCustomProductService{}
	handler := CustomProductCreate(svc, nil)

	body := `{"name":"x","category":"y","price":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/custom-products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCustomProductUpdateForwardsID(t *testing.T) {
	svc := &stubCustomProductService{product: catalog.Product{ID: "custom-abc", Source: catalog.SourceCustom}}
	handler := CustomProductUpdate(svc, nil)

	body := `{"name":"Renamed","category":"Training","basePrice":"200","vatRate":"0"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/custom-products/custom-abc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "custom-abc")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotID != "custom-abc" {
		t.Fatalf("id not forwarded: %q", svc.gotID)
	}
}

func TestCustomProductUpdateNotFound(t *testing.T) {
	svc := &stubCustomProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "custom product not found")}
	handler := CustomProductUpdate(svc, nil)

	body := `{"name":"Renamed","category":"Training"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/custom-products/custom-gone", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "custom-gone")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
}

func TestCustomProductDeleteSuccess(t *testing.T) {
	svc := &stubCustomProductService{}
	handler := CustomProductDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/custom-products/custom-abc", nil)
	req = withURLParam(req, "id", "custom-abc")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotID != "custom-abc" {
		t.Fatalf("id not forwarded: %q", svc.gotID)
	}
}

func TestCustomProductDeletePersistenceFailure(t *testing.T) {
	svc := &stubCustomProductService{err: pkgerrors.New(pkgerrors.CodePersistence, "save custom products")}
	handler := CustomProductDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/custom-products/custom-abc", nil)
	req = withURLParam(req, "id", "custom-abc")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestCustomProductList(t *testing.T) {
	svc := &stubCustomProductService{products: []catalog.Product{
		{ID: "custom-1", Name: "First", Source: catalog.SourceCustom},
		{ID: "custom-2", Name: "Second", Source: catalog.SourceCustom},
	}}
	handler := CustomProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/custom-products", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Products []productDTO `json:"products"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 2 || envelope.Data.Products[0].ID != "custom-1" {
		t.Fatalf("unexpected products %+v", envelope.Data.Products)
	}
}
