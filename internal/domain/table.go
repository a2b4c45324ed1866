package domain

type TableColumn struct {
	Key       SortColumn    `json:"key"`
	Label     string        `json:"label"`
	Active    bool          `json:"active"`
	Direction SortDirection `json:"direction"`
}

// TablePayload é o contrato de saída para a camada de tabela
type TablePayload struct {
	ProductID    string        `json:"productId,omitempty"`
	DisplayState DisplayState  `json:"displayState"`
	Columns      []TableColumn `json:"columns"`
	Rows         []SaleRecord  `json:"rows"`
	Sort         SortState     `json:"sort"`
}
