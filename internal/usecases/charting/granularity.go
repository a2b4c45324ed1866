package charting

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// DayGranularityThresholdMs aproxima 6 meses como 6 x 30 dias, sem considerar o calendário
const DayGranularityThresholdMs int64 = 6 * 30 * 24 * 60 * 60 * 1000

// GranularityFor escolhe a unidade dos ticks do eixo de tempo a partir da largura visível
func GranularityFor(viewportWidthMs int64) domain.Granularity {
	if viewportWidthMs <= DayGranularityThresholdMs {
		return domain.GranularityDay
	}
	return domain.GranularityMonth
}
