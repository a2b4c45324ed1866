package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	catalogdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_catalog_integrator.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// catalogNamespace é o namespace dos UUIDs de versão do catálogo
var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("sales-dashboard-api/catalog"))

type CatalogIntegrator interface {
	FetchCatalog(ctx context.Context) (*domain.Catalog, error)
}

type CatalogService struct {
	Client catalogclient.Client
	now    func() time.Time
}

func New(client catalogclient.Client) CatalogIntegrator {
	return &CatalogService{
		Client: client,
		now:    time.Now,
	}
}

// FetchCatalog busca o catálogo e converte para o domínio.
// Produtos sem ID são ignorados; a versão muda sempre que o conteúdo muda.
func (s *CatalogService) FetchCatalog(ctx context.Context) (*domain.Catalog, error) {
	resp, err := s.Client.GetCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: erro ao buscar catálogo")
	}

	products := make([]*domain.Product, 0, len(resp))
	for i, dto := range resp {
		if dto.ID == "" {
			log.L.WithFields(log.Fields{
				"product_index": i,
				"product_title": dto.Title,
			}).Warn("catalog: produto sem id ignorado")
			continue
		}
		products = append(products, toDomainProduct(dto))
	}

	version, err := catalogVersion(products)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"product_count":   len(products),
		"product_version": version,
	}).Info("catalog: catálogo carregado")

	return &domain.Catalog{
		Products:  products,
		FetchedAt: s.now(),
		Version:   version,
	}, nil
}

func catalogVersion(products []*domain.Product) (string, error) {
	payload, err := json.Marshal(products)
	if err != nil {
		return "", errors.Wrap(err, "catalog: erro ao serializar catálogo")
	}
	return uuid.NewSHA1(catalogNamespace, payload).String(), nil
}

func toDomainProduct(dto catalogdomain.Product) *domain.Product {
	reviews := make([]domain.ReviewRecord, 0, len(dto.Reviews))
	for _, r := range dto.Reviews {
		reviews = append(reviews, domain.ReviewRecord{
			Customer: r.Customer,
			Review:   r.Review,
			Score:    r.Score,
		})
	}

	sales := make([]domain.SaleRecord, 0, len(dto.Sales))
	for _, s := range dto.Sales {
		sales = append(sales, domain.SaleRecord{
			WeekEnding:     s.WeekEnding,
			RetailSales:    s.RetailSales,
			WholesaleSales: s.WholesaleSales,
			UnitsSold:      s.UnitsSold,
			RetailerMargin: s.RetailerMargin,
		})
	}

	return &domain.Product{
		ID:       dto.ID,
		Title:    dto.Title,
		Subtitle: dto.Subtitle,
		Image:    dto.Image,
		Brand:    dto.Brand,
		Retailer: dto.Retailer,
		Details:  dto.Details,
		Tags:     dto.Tags,
		Reviews:  reviews,
		Sales:    sales,
	}
}
