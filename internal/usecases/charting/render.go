package charting

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DefaultWheelSpeed é a velocidade de zoom da roda do mouse
const DefaultWheelSpeed = 0.01

const tooltipTitleFormat = "yyyy-MM-dd"

type datasetSpec struct {
	field domain.SeriesField
	label string
	style domain.StyleHints
}

// chartRegistry guarda a configuração global do gráfico, definida uma única vez no Setup
type chartRegistry struct {
	datasets    []datasetSpec
	interaction domain.InteractionHints
}

var (
	setupOnce sync.Once
	registry  *chartRegistry
)

// Setup registra as séries e as opções de interação do gráfico.
// Só a primeira chamada tem efeito; depois disso nada global é alterado.
func Setup(wheelSpeed float64) {
	setupOnce.Do(func() {
		if wheelSpeed <= 0 || wheelSpeed >= 1 {
			wheelSpeed = DefaultWheelSpeed
		}

		registry = &chartRegistry{
			datasets: []datasetSpec{
				{
					field: domain.RetailSalesField,
					label: "Retail Sales",
					style: domain.StyleHints{BorderColor: "rgba(75,192,192,1)", Fill: false},
				},
				{
					field: domain.WholesaleSalesField,
					label: "Wholesale Sales",
					style: domain.StyleHints{BorderColor: "rgba(153,102,255,1)", Fill: false},
				},
			},
			interaction: domain.InteractionHints{
				PanMode:      "x",
				ZoomMode:     "x",
				WheelSpeed:   wheelSpeed,
				PinchEnabled: false,
			},
		}
	})
}

func settings() *chartRegistry {
	Setup(DefaultWheelSpeed)
	return registry
}

// WheelSpeed retorna a velocidade registrada no Setup
func WheelSpeed() float64 {
	return settings().interaction.WheelSpeed
}

// ProductSeries são os pontos derivados de um produto, recalculados a cada seleção
type ProductSeries struct {
	ProductID      string
	Title          string
	Points         map[domain.SeriesField][]domain.PlotPoint
	DroppedRecords int
}

// NewProductSeries monta as séries de varejo e atacado de um produto.
// Semanas com data malformada são registradas em log e descartadas.
func NewProductSeries(product *domain.Product) *ProductSeries {
	series := &ProductSeries{
		ProductID: product.ID,
		Title:     product.Title,
		Points:    make(map[domain.SeriesField][]domain.PlotPoint),
	}

	for _, spec := range settings().datasets {
		points, errs := BuildSeries(product.Sales, spec.field)
		series.Points[spec.field] = points

		// A data é a mesma para os dois campos; conta os descartes uma vez só
		if spec.field == domain.RetailSalesField {
			series.DroppedRecords = len(errs)
			for _, err := range errs {
				fields := log.Fields{
					"product_id": product.ID,
					"error":      err.Error(),
				}
				var malformed *domain.MalformedDateError
				if errors.As(err, &malformed) {
					fields["week_ending"] = malformed.WeekEnding
				}
				log.L.WithFields(fields).Warn("charting: registro de venda descartado")
			}
		}
	}

	return series
}

// Extent retorna o intervalo completo das séries, ou nil se não há pontos
func (s *ProductSeries) Extent() *domain.Extent {
	all := make([][]domain.PlotPoint, 0, len(s.Points))
	for _, points := range s.Points {
		all = append(all, points)
	}
	return ExtentOf(all...)
}

// TooltipTitle formata o instante do ponto como no tooltip do gráfico
func TooltipTitle(timestamp int64) string {
	return time.UnixMilli(timestamp).UTC().Format(time.DateOnly)
}

// EmptyChartPayload é o payload de um gráfico sem série (carregando, catálogo vazio, sem dados)
func EmptyChartPayload(state domain.DisplayState, warning string) domain.ChartPayload {
	reg := settings()
	return domain.ChartPayload{
		DisplayState: state,
		Datasets:     []domain.Dataset{},
		AxisConfig:   domain.AxisConfig{TimeUnit: domain.GranularityMonth},
		Interaction:  reg.interaction,
		Tooltip:      domain.TooltipConfig{TitleFormat: tooltipTitleFormat},
		Warning:      warning,
	}
}

// BuildChartPayload junta séries, viewport e granularidade no payload de renderização.
// A granularidade é calculada aqui, antes de cada renderização, a partir do viewport atual.
func BuildChartPayload(series *ProductSeries, controller *ViewportController) domain.ChartPayload {
	if series == nil {
		return EmptyChartPayload(domain.DisplayNoData, (&domain.EmptySeriesError{}).Error())
	}

	viewport, ok := controller.Viewport()
	if !ok {
		payload := EmptyChartPayload(domain.DisplayNoData, (&domain.EmptySeriesError{ProductID: series.ProductID}).Error())
		payload.ProductID = series.ProductID
		payload.Title = series.Title
		payload.DroppedRecords = series.DroppedRecords
		return payload
	}

	reg := settings()
	extent, _ := controller.Extent()

	datasets := make([]domain.Dataset, 0, len(reg.datasets))
	for _, spec := range reg.datasets {
		datasets = append(datasets, domain.Dataset{
			Label:      spec.label,
			Field:      spec.field,
			Points:     sortedByTime(series.Points[spec.field]),
			StyleHints: spec.style,
		})
	}

	return domain.ChartPayload{
		ProductID:    series.ProductID,
		Title:        series.Title,
		DisplayState: domain.DisplayReady,
		Datasets:     datasets,
		AxisConfig: domain.AxisConfig{
			TimeUnit: GranularityFor(viewport.Width()),
			Viewport: &viewport,
			Extent:   &extent,
		},
		Interaction:    reg.interaction,
		Tooltip:        domain.TooltipConfig{TitleFormat: tooltipTitleFormat},
		DroppedRecords: series.DroppedRecords,
	}
}

// sortedByTime copia e ordena os pontos; o adaptador de série preserva a ordem de origem
func sortedByTime(points []domain.PlotPoint) []domain.PlotPoint {
	sorted := make([]domain.PlotPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted
}
