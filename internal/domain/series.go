package domain

// DayMs é a largura mínima do viewport
const DayMs int64 = 24 * 60 * 60 * 1000

// SeriesField identifica o campo numérico plotado
type SeriesField string

const (
	RetailSalesField    SeriesField = "retailSales"
	WholesaleSalesField SeriesField = "wholesaleSales"
)

// PlotPoint é derivado a cada seleção de produto e nunca persistido
type PlotPoint struct {
	Timestamp int64   `json:"x"` // epoch em milissegundos
	Value     float64 `json:"y"`
}

// Viewport é o intervalo de tempo visível no eixo horizontal.
// Invariante: MinTime < MaxTime.
type Viewport struct {
	MinTime int64 `json:"minTime"`
	MaxTime int64 `json:"maxTime"`
}

func (v Viewport) Width() int64 {
	return v.MaxTime - v.MinTime
}

// Extent é o intervalo completo coberto pela série de um produto
type Extent struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (e Extent) Width() int64 {
	return e.Max - e.Min
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)
