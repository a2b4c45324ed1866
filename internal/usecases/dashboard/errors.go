package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos do dashboard
var (
	// Erros de validação
	ErrSessionIDRequired = errors.New("session ID is required")
	ErrInvalidSortColumn    = errors.New("invalid sort column")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidGesture       = errors.New("invalid pan/zoom gesture")

	// Erros de estado
	ErrSessionNotFound  = errors.New("session not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrStaleInteraction = errors.New("interaction targets a product that is no longer selected")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// Erros de serviços externos
	ErrCatalogUnavailable = errors.New("error fetching catalog")

	ErrGenerateID = errors.New("error generating session ID")
)

// DashboardError é um erro com contexto adicional para as sessões
type DashboardError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string // Sessão envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewDashboardErrorWithSession(err error, code string, sessionID string, details string) *DashboardError {
	return &DashboardError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
