package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	monthLabelFormat = "Jan 2006"
	dayLabelFormat   = "Jan 02"
)

//go:generate mockgen -source=chart_image.go -destination=mocks/mock_chart_image.go -package=mocks

type ChartImageRenderer interface {
	RenderPNG(payload domain.ChartPayload) ([]byte, error)
}

type PNGRenderer struct {
	width    int
	height   int
	maxTicks int
}

func NewChartImageRenderer(cfg *config.Config) ChartImageRenderer {
	return &PNGRenderer{
		width:    cfg.Chart.Width,
		height:   cfg.Chart.Height,
		maxTicks: cfg.Chart.MaxTicks,
	}
}

// RenderPNG desenha o viewport atual do payload. Só entram os pontos dentro do
// viewport, e uma série precisa de ao menos dois pontos para virar linha.
func (r *PNGRenderer) RenderPNG(payload domain.ChartPayload) ([]byte, error) {
	viewport := payload.AxisConfig.Viewport
	if payload.DisplayState != domain.DisplayReady || viewport == nil {
		return nil, &domain.EmptySeriesError{ProductID: payload.ProductID}
	}

	series := make([]chart.Series, 0, len(payload.Datasets))
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, dataset := range payload.Datasets {
		ts := chart.TimeSeries{
			Name: dataset.Label,
			Style: chart.Style{
				StrokeColor: parseColor(dataset.StyleHints.BorderColor),
				StrokeWidth: 2,
			},
		}

		for _, p := range dataset.Points {
			if p.Timestamp < viewport.MinTime || p.Timestamp > viewport.MaxTime {
				continue
			}
			ts.XValues = append(ts.XValues, time.UnixMilli(p.Timestamp).UTC())
			ts.YValues = append(ts.YValues, p.Value)
			minY = math.Min(minY, p.Value)
			maxY = math.Max(maxY, p.Value)
		}

		if len(ts.XValues) < 2 {
			continue
		}
		series = append(series, ts)
	}

	if len(series) == 0 {
		return nil, &domain.EmptySeriesError{ProductID: payload.ProductID}
	}

	labelFormat := dayLabelFormat
	if payload.AxisConfig.TimeUnit == domain.GranularityMonth {
		labelFormat = monthLabelFormat
	}

	graph := chart.Chart{
		Title:  payload.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{
				Min: toChartX(viewport.MinTime),
				Max: toChartX(viewport.MaxTime),
			},
			Ticks: r.ticks(*viewport, payload.AxisConfig.TimeUnit, labelFormat),
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).UTC().Format(labelFormat)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(f), 'f', -1, 64)
				}
				return ""
			},
		},
		Series: series,
	}

	// Valores todos iguais deixariam o eixo y sem amplitude
	if minY == maxY {
		graph.YAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "renderer: erro ao desenhar gráfico")
	}

	return buf.Bytes(), nil
}

// ticks gera marcações no início de cada dia ou mês do viewport, limitadas a maxTicks
func (r *PNGRenderer) ticks(viewport domain.Viewport, unit domain.Granularity, labelFormat string) []chart.Tick {
	start := time.UnixMilli(viewport.MinTime).UTC()
	end := time.UnixMilli(viewport.MaxTime).UTC()

	var cursor time.Time
	step := func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	if unit == domain.GranularityMonth {
		cursor = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	} else {
		cursor = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}
	if cursor.Before(start) {
		cursor = step(cursor)
	}

	var candidates []time.Time
	for ; !cursor.After(end); cursor = step(cursor) {
		candidates = append(candidates, cursor)
	}

	stride := 1
	if r.maxTicks > 0 && len(candidates) > r.maxTicks {
		stride = int(math.Ceil(float64(len(candidates)) / float64(r.maxTicks)))
	}

	ticks := make([]chart.Tick, 0, len(candidates)/stride+1)
	for i := 0; i < len(candidates); i += stride {
		ticks = append(ticks, chart.Tick{
			Value: chart.TimeToFloat64(candidates[i]),
			Label: candidates[i].Format(labelFormat),
		})
	}
	return ticks
}

// toChartX converte ms para a escala do eixo x do go-chart (nanossegundos)
func toChartX(ms int64) float64 {
	return chart.TimeToFloat64(time.UnixMilli(ms))
}

// parseColor lê as cores no formato rgba(r,g,b,a) usado nos datasets
func parseColor(value string) drawing.Color {
	var red, green, blue uint8
	var alpha float64
	if _, err := fmt.Sscanf(value, "rgba(%d,%d,%d,%g)", &red, &green, &blue, &alpha); err != nil {
		return chart.ColorBlue
	}
	return drawing.Color{R: red, G: green, B: blue, A: uint8(math.Round(alpha * 255))}
}
