package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCatalog  = "catalog"
	CronJobTypeSessions = "sessions"
	CronJobTypeAll      = "all"
)

// CronJob é o contrato comum dos agendadores
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CatalogSyncService    CronJob
	SessionCleanupService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCatalog:
			if services.CatalogSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do catálogo não disponível", nil)
				return
			}
			services.CatalogSyncService.TriggerManualSync()

		case CronJobTypeSessions:
			if services.SessionCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.SessionCleanupService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CatalogSyncService != nil {
				services.CatalogSyncService.TriggerManualSync()
			}
			if services.SessionCleanupService != nil {
				services.SessionCleanupService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: catalog, sessions, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CatalogSyncService != nil {
			status[CronJobTypeCatalog] = services.CatalogSyncService.GetStatus()
		}
		if services.SessionCleanupService != nil {
			status[CronJobTypeSessions] = services.SessionCleanupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
