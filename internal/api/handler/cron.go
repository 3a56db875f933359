package handler

import (
	"net/http"

	"github.com/gpaizante/gestao-caixa-api/internal/scheduler"
	"github.com/gpaizante/gestao-caixa-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshots = "snapshots"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
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
		case CronJobTypeSnapshots:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshots", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta:", err)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.SnapshotSyncService != nil {
			status["snapshots"] = services.SnapshotSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Erro ao enviar resposta:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
