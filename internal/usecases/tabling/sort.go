package tabling

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	ErrInvalidColumn    = errors.New("coluna de ordenação inválida")
	ErrInvalidDirection = errors.New("direção de ordenação inválida")
)

// ParseColumn valida o nome de coluna recebido do cliente
func ParseColumn(value string) (domain.SortColumn, error) {
	for _, column := range domain.SortColumns {
		if string(column) == value {
			return column, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColumn, value)
}

// ParseDirection valida a direção explícita enviada pelo cliente
func ParseDirection(value string) (domain.SortDirection, error) {
	switch domain.SortDirection(value) {
	case domain.Ascending, domain.Descending:
		return domain.SortDirection(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, value)
}

// Sort devolve uma nova sequência ordenada sem alterar rows.
// A ordenação é estável: empates mantêm a ordem de entrada nas duas direções.
func Sort(rows []domain.SaleRecord, column domain.SortColumn, direction domain.SortDirection) []domain.SaleRecord {
	sorted := make([]domain.SaleRecord, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compare(sorted[i], sorted[j], column)
		if direction == domain.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}

// compare é tipado por campo: weekEnding é comparado lexicamente (ISO de largura fixa)
func compare(a, b domain.SaleRecord, column domain.SortColumn) int {
	switch column {
	case domain.ColumnWeekEnding:
		return compareOrdered(a.WeekEnding, b.WeekEnding)
	case domain.ColumnRetailSales:
		return compareOrdered(a.RetailSales, b.RetailSales)
	case domain.ColumnWholesaleSales:
		return compareOrdered(a.WholesaleSales, b.WholesaleSales)
	case domain.ColumnUnitsSold:
		return compareOrdered(a.UnitsSold, b.UnitsSold)
	case domain.ColumnRetailerMargin:
		return compareOrdered(a.RetailerMargin, b.RetailerMargin)
	}
	return 0
}

func compareOrdered[T ~string | ~int | ~float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
