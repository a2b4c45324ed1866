package catalogclient

import (
	"context"
	"net/http"

	catalogdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_catalog_client.go -package=mocks

type Client interface {
	GetCatalog(ctx context.Context) (CatalogResponse, error)
}

type CatalogClient struct {
	httpClient *http.Client
	url        string
}

// NewClient cria o cliente HTTP do catálogo de produtos
func NewClient(cfg *config.Config) Client {
	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		url: cfg.Catalog.URL,
	}
}

type CatalogResponse []catalogdomain.Product
