package domain

import "time"

// SaleRecord representa uma semana de vendas de um produto
type SaleRecord struct {
	WeekEnding     string  `json:"weekEnding"`
	RetailSales    float64 `json:"retailSales"`
	WholesaleSales float64 `json:"wholesaleSales"`
	UnitsSold      int     `json:"unitsSold"`
	RetailerMargin float64 `json:"retailerMargin"`
}

type ReviewRecord struct {
	Customer string `json:"customer"`
	Review   string `json:"review"`
	Score    int    `json:"score"`
}

// Product é somente leitura depois de recebido do catálogo.
// A ordem de Sales é a da origem, não necessariamente cronológica.
type Product struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Image    string         `json:"image"`
	Brand    string         `json:"brand"`
	Retailer string         `json:"retailer"`
	Details  []string       `json:"details"`
	Tags     []string       `json:"tags"`
	Reviews  []ReviewRecord `json:"reviews"`
	Sales    []SaleRecord   `json:"sales"`
}

// ProductSummary é o card exibido na lista de produtos
type ProductSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Image    string   `json:"image"`
	Brand    string   `json:"brand"`
	Retailer string   `json:"retailer"`
	Tags     []string `json:"tags"`
}

func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Image:    p.Image,
		Brand:    p.Brand,
		Retailer: p.Retailer,
		Tags:     p.Tags,
	}
}

// Catalog é o conjunto de produtos resolvido pelo integrador
type Catalog struct {
	Products  []*Product `json:"products"`
	FetchedAt time.Time  `json:"fetched_at"`
	Version   string     `json:"version"` // Hash do conteúdo, usado para detectar mudanças
}

// FindProduct busca um produto pelo ID
func (c *Catalog) FindProduct(id string) *Product {
	if c == nil {
		return nil
	}
	for _, p := range c.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FirstProduct retorna o produto exibido por padrão
func (c *Catalog) FirstProduct() *Product {
	if c == nil || len(c.Products) == 0 {
		return nil
	}
	return c.Products[0]
}
