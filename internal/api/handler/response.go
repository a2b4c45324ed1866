package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func sessionID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// decodeBody lê o corpo JSON. Com optional, corpo vazio não é erro.
func decodeBody(r *http.Request, v any, optional bool) error {
	if r.Body == nil {
		if optional {
			return nil
		}
		return io.EOF
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros do dashboard para o formato padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	logger := log.ForContext(r.Context()).WithField("error", err.Error())

	var dashErr *dashboard.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallbackMessage)
		} else {
			logger.Debug(fallbackMessage)
		}

		var details map[string]string
		if dashErr.SessionID != "" {
			details = map[string]string{"sessionId": dashErr.SessionID}
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), details)
		return
	}

	logger.Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}
