package domain

// DisplayState indica ao cliente o que deve ser desenhado
type DisplayState string

const (
	DisplayLoading DisplayState = "loading" // Catálogo ainda não carregado
	DisplayEmpty   DisplayState = "empty"   // Catálogo sem produtos
	DisplayNoData  DisplayState = "no_data" // Produto sem pontos plotáveis
	DisplayReady   DisplayState = "ready"
)

type StyleHints struct {
	BorderColor string `json:"borderColor"`
	Fill        bool   `json:"fill"`
}

type Dataset struct {
	Label      string      `json:"label"`
	Field      SeriesField `json:"field"`
	Points     []PlotPoint `json:"points"`
	StyleHints StyleHints  `json:"styleHints"`
}

type AxisConfig struct {
	TimeUnit Granularity `json:"timeUnit"`
	Viewport *Viewport   `json:"viewport,omitempty"`
	Extent   *Extent     `json:"extent,omitempty"`
}

// InteractionHints descreve os gestos habilitados no cliente (somente eixo x)
type InteractionHints struct {
	PanMode      string  `json:"panMode"`
	ZoomMode     string  `json:"zoomMode"`
	WheelSpeed   float64 `json:"wheelSpeed"`
	PinchEnabled bool    `json:"pinchEnabled"`
}

type TooltipConfig struct {
	TitleFormat string `json:"titleFormat"`
}

// ChartPayload é o contrato de saída para a camada de renderização
type ChartPayload struct {
	ProductID      string           `json:"productId,omitempty"`
	Title          string           `json:"title"`
	DisplayState   DisplayState     `json:"displayState"`
	Datasets       []Dataset        `json:"datasets"`
	AxisConfig     AxisConfig       `json:"axisConfig"`
	Interaction    InteractionHints `json:"interaction"`
	Tooltip        TooltipConfig    `json:"tooltip"`
	DroppedRecords int              `json:"droppedRecords"`
	Warning        string           `json:"warning,omitempty"`
}
