package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidSortColumn   = "VAL_004" // Coluna de ordenação desconhecida
	ErrInvalidGesture      = "VAL_005" // Gesto de pan/zoom inválido
	ErrResourceNotFound    = "VAL_006" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_007" // Método não suportado pela rota
	ErrInvalidSortOrder    = "VAL_008" // Direção de ordenação desconhecida

	// Erros do dashboard (3000-3999)
	ErrSessionNotFound   = "DASH_001" // Sessão não encontrada
	ErrProductNotFound   = "DASH_002" // Produto não encontrado no catálogo
	ErrStaleInteraction  = "DASH_003" // Interação de um produto que não está mais selecionado
	ErrCatalogNotLoaded  = "DASH_004" // Catálogo ainda não carregado
	ErrRenderUnavailable = "DASH_005" // Nada para desenhar no viewport atual

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrCommunication   = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidSortColumn:   http.StatusBadRequest,
	ErrInvalidGesture:      http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInvalidSortOrder:    http.StatusBadRequest,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrProductNotFound:     http.StatusNotFound,
	ErrStaleInteraction:    http.StatusConflict,
	ErrCatalogNotLoaded:    http.StatusServiceUnavailable,
	ErrRenderUnavailable:   http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
