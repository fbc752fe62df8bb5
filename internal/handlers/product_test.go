// internal/handlers/product_test.go
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/services"
)

type fakeProductStore struct {
	err error
}

func (f *fakeProductStore) SearchProducts(params *services.ProductSearchParams) ([]models.Product, int64, error) {
	return nil, 0, f.err
}

func (f *fakeProductStore) GetProduct(id uuid.UUID) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{}, nil
}

func (f *fakeProductStore) CreateProduct(req *services.CreateProductRequest) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{Name: req.Name}, nil
}

func (f *fakeProductStore) UpdateProduct(id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{}, nil
}

func (f *fakeProductStore) DeleteProduct(id uuid.UUID) error {
	return f.err
}

func (f *fakeProductStore) AdjustStock(id uuid.UUID, delta int) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{Stock: delta}, nil
}

type recordingInvalidator struct {
	calls int
}

func (r *recordingInvalidator) InvalidateCache(ctx context.Context) {
	r.calls++
}

func productRouter(store *fakeProductStore, inv *recordingInvalidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(store, nil, inv)
	r := gin.New()
	r.POST("/api/products", h.CreateProduct)
	r.PUT("/api/products/:id", h.UpdateProduct)
	r.DELETE("/api/products/:id", h.DeleteProduct)
	r.PUT("/api/products/:id/stock", h.AdjustStock)
	return r
}

func TestProductWritesDropDemandCache(t *testing.T) {
	id := uuid.New().String()
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"create", "POST", "/api/products", `{"name": "Basmati Rice", "desc": "Long grain basmati", "price": 120.5, "stock": 10}`, http.StatusCreated},
		{"update", "PUT", "/api/products/" + id, `{"price": 99.0}`, http.StatusOK},
		{"delete", "DELETE", "/api/products/" + id, "", http.StatusOK},
		{"stock adjust", "PUT", "/api/products/" + id + "/stock", `{"delta": -3}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &recordingInvalidator{}
			r := productRouter(&fakeProductStore{}, inv)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, 1, inv.calls, "write should drop the cached demand snapshot")
		})
	}
}

func TestProductWriteFailuresKeepDemandCache(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"invalid body", "POST", "/api/products", `{"name": "x"}`},
		{"bad id", "PUT", "/api/products/not-a-uuid", `{"price": 99.0}`},
		{"bad id on delete", "DELETE", "/api/products/not-a-uuid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &recordingInvalidator{}
			r := productRouter(&fakeProductStore{}, inv)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, inv.calls, "rejected write should leave the cache alone")
		})
	}
}
