package charting

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrUnknownSeriesField = errors.New("campo de série desconhecido")

// ParseWeekEnding converte uma data ISO (sem hora) em epoch ms, meia-noite UTC
func ParseWeekEnding(weekEnding string) (int64, error) {
	t, err := time.Parse(time.DateOnly, weekEnding)
	if err != nil {
		return 0, &domain.MalformedDateError{WeekEnding: weekEnding, Err: err}
	}
	return t.UnixMilli(), nil
}

// BuildSeries transforma os registros de venda em pontos plotáveis do campo informado.
// Registros com data malformada são descartados e retornados como erro; a ordem de
// entrada é preservada.
func BuildSeries(sales []domain.SaleRecord, field domain.SeriesField) ([]domain.PlotPoint, []error) {
	if field != domain.RetailSalesField && field != domain.WholesaleSalesField {
		return nil, []error{fmt.Errorf("%w: %s", ErrUnknownSeriesField, field)}
	}

	points := make([]domain.PlotPoint, 0, len(sales))
	var errs []error

	for _, sale := range sales {
		timestamp, err := ParseWeekEnding(sale.WeekEnding)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		points = append(points, domain.PlotPoint{
			Timestamp: timestamp,
			Value:     fieldValue(sale, field),
		})
	}

	return points, errs
}

func fieldValue(sale domain.SaleRecord, field domain.SeriesField) float64 {
	if field == domain.WholesaleSalesField {
		return sale.WholesaleSales
	}
	return sale.RetailSales
}

// ExtentOf calcula o intervalo completo de todas as séries.
// Uma série com um único instante é alargada para um dia.
func ExtentOf(series ...[]domain.PlotPoint) *domain.Extent {
	var extent *domain.Extent

	for _, points := range series {
		for _, p := range points {
			if extent == nil {
				extent = &domain.Extent{Min: p.Timestamp, Max: p.Timestamp}
				continue
			}
			if p.Timestamp < extent.Min {
				extent.Min = p.Timestamp
			}
			if p.Timestamp > extent.Max {
				extent.Max = p.Timestamp
			}
		}
	}

	if extent != nil && extent.Max == extent.Min {
		extent.Max = extent.Min + domain.DayMs
	}

	return extent
}
