package renderer

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func ms(date string) int64 {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}

func testRenderer() *PNGRenderer {
	cfg := &config.Config{Chart: config.Chart{Width: 800, Height: 300, MaxTicks: 6}}
	return NewChartImageRenderer(cfg).(*PNGRenderer)
}

func readyPayload(viewport domain.Viewport, unit domain.Granularity) domain.ChartPayload {
	return domain.ChartPayload{
		ProductID:    "B007TIE0GQ",
		Title:        "Shark Ninja",
		DisplayState: domain.DisplayReady,
		Datasets: []domain.Dataset{
			{
				Label: "Retail Sales",
				Field: domain.RetailSalesField,
				Points: []domain.PlotPoint{
					{Timestamp: ms("2017-01-01"), Value: 100},
					{Timestamp: ms("2017-02-01"), Value: 50},
					{Timestamp: ms("2017-03-01"), Value: 75},
				},
				StyleHints: domain.StyleHints{BorderColor: "rgba(75,192,192,1)"},
			},
			{
				Label: "Wholesale Sales",
				Field: domain.WholesaleSalesField,
				Points: []domain.PlotPoint{
					{Timestamp: ms("2017-01-01"), Value: 80},
					{Timestamp: ms("2017-02-01"), Value: 40},
					{Timestamp: ms("2017-03-01"), Value: 60},
				},
				StyleHints: domain.StyleHints{BorderColor: "rgba(153,102,255,1)"},
			},
		},
		AxisConfig: domain.AxisConfig{TimeUnit: unit, Viewport: &viewport},
	}
}

func TestPNGRenderer_RenderPNG(t *testing.T) {
	r := testRenderer()

	tests := []struct {
		name     string
		viewport domain.Viewport
		unit     domain.Granularity
	}{
		{
			name:     "intervalo completo",
			viewport: domain.Viewport{MinTime: ms("2017-01-01"), MaxTime: ms("2017-03-01")},
			unit:     domain.GranularityDay,
		},
		{
			name:     "escala mensal",
			viewport: domain.Viewport{MinTime: ms("2016-06-01"), MaxTime: ms("2017-06-01")},
			unit:     domain.GranularityMonth,
		},
		{
			name:     "valores iguais",
			viewport: domain.Viewport{MinTime: ms("2017-01-01"), MaxTime: ms("2017-02-01")},
			unit:     domain.GranularityDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := readyPayload(tt.viewport, tt.unit)
			if tt.name == "valores iguais" {
				for i := range payload.Datasets {
					for j := range payload.Datasets[i].Points {
						payload.Datasets[i].Points[j].Value = 10
					}
				}
			}

			image, err := r.RenderPNG(payload)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(image, pngSignature))
		})
	}
}

func TestPNGRenderer_NothingToDraw(t *testing.T) {
	r := testRenderer()

	tests := []struct {
		name    string
		payload domain.ChartPayload
	}{
		{
			name:    "sem dados",
			payload: domain.ChartPayload{ProductID: "x", DisplayState: domain.DisplayNoData},
		},
		{
			name: "viewport com um ponto por série",
			payload: readyPayload(
				domain.Viewport{MinTime: ms("2017-01-15"), MaxTime: ms("2017-02-15")},
				domain.GranularityDay,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, err := r.RenderPNG(tt.payload)
			assert.Nil(t, image)

			var empty *domain.EmptySeriesError
			assert.True(t, errors.As(err, &empty))
		})
	}
}

func TestPNGRenderer_Ticks(t *testing.T) {
	r := testRenderer()

	t.Run("mensal começa no primeiro mês inteiro", func(t *testing.T) {
		viewport := domain.Viewport{MinTime: ms("2017-01-15"), MaxTime: ms("2017-04-20")}
		ticks := r.ticks(viewport, domain.GranularityMonth, monthLabelFormat)

		require.Len(t, ticks, 3)
		assert.Equal(t, "Feb 2017", ticks[0].Label)
		assert.Equal(t, "Apr 2017", ticks[2].Label)
	})

	t.Run("diário limitado ao máximo de marcações", func(t *testing.T) {
		viewport := domain.Viewport{MinTime: ms("2017-01-01"), MaxTime: ms("2017-03-01")}
		ticks := r.ticks(viewport, domain.GranularityDay, dayLabelFormat)

		assert.LessOrEqual(t, len(ticks), 6)
		assert.Equal(t, "Jan 01", ticks[0].Label)
	})
}

func TestParseColor(t *testing.T) {
	c := parseColor("rgba(153,102,255,1)")
	assert.Equal(t, uint8(153), c.R)
	assert.Equal(t, uint8(102), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)

	assert.Equal(t, chart.ColorBlue, parseColor("azul"))
}
