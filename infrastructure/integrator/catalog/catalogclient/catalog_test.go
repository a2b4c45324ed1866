package catalogclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

const catalogJSON = `[
  {
    "id": "B007TIE0GQ",
    "title": "Magic Bullet NutriBullet Pro",
    "image": "https://images-na.ssl-images-amazon.com/images/I/71.jpg",
    "subtitle": "The Original Magic Bullet",
    "brand": "Nutribullet",
    "reviews": [{"customer": "Fan", "review": "Works great", "score": 5}],
    "retailer": "Amazon",
    "details": ["900 watts"],
    "tags": ["Pantry", "Blender"],
    "sales": [
      {"weekEnding": "2017-01-01", "retailSales": 348123, "wholesaleSales": 255721, "unitsSold": 887, "retailerMargin": 123294},
      {"weekEnding": "2017-01-08", "retailSales": 254908, "wholesaleSales": 225453, "unitsSold": 732, "retailerMargin": 28837}
    ]
  }
]`

func newTestClient(url string) Client {
	return NewClient(&config.Config{
		Catalog: config.Catalog{URL: url, Timeout: 2 * time.Second},
	})
}

func TestCatalogClient_GetCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	products, err := newTestClient(server.URL).GetCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "B007TIE0GQ", p.ID)
	assert.Equal(t, []string{"Pantry", "Blender"}, p.Tags)
	require.Len(t, p.Sales, 2)
	assert.Equal(t, "2017-01-08", p.Sales[1].WeekEnding)
	assert.Equal(t, 732, p.Sales[1].UnitsSold)
	assert.Equal(t, 5, p.Reviews[0].Score)
}

func TestCatalogClient_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetCatalog(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrUnexpectedStatus, errors.Cause(err))
	assert.Contains(t, err.Error(), "404")
}

func TestCatalogClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetCatalog(context.Background())
	assert.Error(t, err)
}

func TestCatalogClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).GetCatalog(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
