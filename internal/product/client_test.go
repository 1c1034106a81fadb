package product_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/order-service/internal/product"
)

func TestClient_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantErr   bool
		wantName  string
		wantPrice string
		wantStock int
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/products/P1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"name":"Widget","description":"A widget","price":8.50,"stock":10}`))
			},
			wantName:  "Widget",
			wantPrice: "8.50",
			wantStock: 10,
		},
		{
			name: "not_found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: true,
		},
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"name":`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := product.NewClient(srv.URL, srv.Client())

			p, err := client.GetByID(context.Background(), "P1")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name)
			assert.True(t, p.Price.Equal(decimal.RequireFromString(tt.wantPrice)))
			assert.Equal(t, tt.wantStock, p.Stock)
		})
	}
}

func TestClient_GetByID_EscapesProductID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"name":"X","description":"","price":1,"stock":1}`))
	}))
	defer srv.Close()

	client := product.NewClient(srv.URL+"/", srv.Client())

	_, err := client.GetByID(context.Background(), "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/api/products/a%20b%2Fc", gotPath)
}

func TestClient_GetByID_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := product.NewClient(srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetByID(ctx, "P1")
	assert.Error(t, err)
}
