package domain

// SortColumn é um dos cinco campos de SaleRecord
type SortColumn string

const (
	ColumnWeekEnding     SortColumn = "weekEnding"
	ColumnRetailSales    SortColumn = "retailSales"
	ColumnWholesaleSales SortColumn = "wholesaleSales"
	ColumnUnitsSold      SortColumn = "unitsSold"
	ColumnRetailerMargin SortColumn = "retailerMargin"
)

// SortColumns lista as colunas na ordem em que aparecem na tabela
var SortColumns = []SortColumn{
	ColumnWeekEnding,
	ColumnRetailSales,
	ColumnWholesaleSales,
	ColumnUnitsSold,
	ColumnRetailerMargin,
}

var columnLabels = map[SortColumn]string{
	ColumnWeekEnding:     "Week Ending",
	ColumnRetailSales:    "Retail Sales",
	ColumnWholesaleSales: "Wholesale Sales",
	ColumnUnitsSold:      "Units Sold",
	ColumnRetailerMargin: "Retailer Margin",
}

func (c SortColumn) Label() string {
	return columnLabels[c]
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

type SortState struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

func DefaultSortState() SortState {
	return SortState{Column: ColumnWeekEnding, Direction: Ascending}
}
