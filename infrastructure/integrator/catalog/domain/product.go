package domain

// Sale é a semana de vendas no formato do data.json
type Sale struct {
	WeekEnding     string  `json:"weekEnding"`
	RetailSales    float64 `json:"retailSales"`
	WholesaleSales float64 `json:"wholesaleSales"`
	UnitsSold      int     `json:"unitsSold"`
	RetailerMargin float64 `json:"retailerMargin"`
}

type Review struct {
	Customer string `json:"customer"`
	Review   string `json:"review"`
	Score    int    `json:"score"`
}

// Product é o produto como vem do catálogo, antes do mapeamento para o domínio
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Image    string   `json:"image"`
	Subtitle string   `json:"subtitle"`
	Brand    string   `json:"brand"`
	Reviews  []Review `json:"reviews"`
	Retailer string   `json:"retailer"`
	Details  []string `json:"details"`
	Tags     []string `json:"tags"`
	Sales    []Sale   `json:"sales"`
}
