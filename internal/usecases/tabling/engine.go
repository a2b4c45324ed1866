package tabling

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// Engine guarda o estado de ordenação da tabela de vendas
type Engine struct {
	state domain.SortState
}

func NewEngine() *Engine {
	return &Engine{state: domain.DefaultSortState()}
}

func (e *Engine) State() domain.SortState {
	return e.state
}

// Reset volta para weekEnding ascendente
func (e *Engine) Reset() {
	e.state = domain.DefaultSortState()
}

// OnHeaderClick aplica a regra de alternância: clicar na coluna ativa inverte a
// direção, clicar em outra coluna a ativa em ordem ascendente.
func (e *Engine) OnHeaderClick(column domain.SortColumn) domain.SortState {
	if e.state.Column == column && e.state.Direction == domain.Ascending {
		e.state = domain.SortState{Column: column, Direction: domain.Descending}
	} else {
		e.state = domain.SortState{Column: column, Direction: domain.Ascending}
	}
	return e.state
}

// SetSort fixa coluna e direção, como quando o cliente restaura uma ordenação salva
func (e *Engine) SetSort(column domain.SortColumn, direction domain.SortDirection) domain.SortState {
	e.state = domain.SortState{Column: column, Direction: direction}
	return e.state
}

// Rows ordena as linhas conforme o estado atual
func (e *Engine) Rows(source []domain.SaleRecord) []domain.SaleRecord {
	return Sort(source, e.state.Column, e.state.Direction)
}

// Payload monta as linhas e os indicadores de cabeçalho da tabela
func (e *Engine) Payload(productID string, source []domain.SaleRecord) domain.TablePayload {
	columns := make([]domain.TableColumn, 0, len(domain.SortColumns))
	for _, column := range domain.SortColumns {
		active := column == e.state.Column
		direction := domain.Ascending
		if active {
			direction = e.state.Direction
		}
		columns = append(columns, domain.TableColumn{
			Key:       column,
			Label:     column.Label(),
			Active:    active,
			Direction: direction,
		})
	}

	return domain.TablePayload{
		ProductID:    productID,
		DisplayState: domain.DisplayReady,
		Columns:      columns,
		Rows:         e.Rows(source),
		Sort:         e.state,
	}
}
