package domain

import "fmt"

// MalformedDateError indica que o weekEnding de um registro não é uma data ISO válida.
// O registro é descartado e a série continua.
type MalformedDateError struct {
	WeekEnding string
	Err        error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("data malformada %q: %v", e.WeekEnding, e.Err)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// EmptySeriesError indica que o produto selecionado não tem pontos plotáveis
type EmptySeriesError struct {
	ProductID string
}

func (e *EmptySeriesError) Error() string {
	if e.ProductID == "" {
		return "série vazia"
	}
	return fmt.Sprintf("série vazia para o produto %s", e.ProductID)
}

// InvalidViewportError indica um pan/zoom rejeitado; o viewport anterior é mantido
type InvalidViewportError struct {
	Op     string
	Reason string
}

func (e *InvalidViewportError) Error() string {
	return fmt.Sprintf("viewport inválido em %s: %s", e.Op, e.Reason)
}
