package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
)

// CronJobTypeDashboardWarmup recalcula o resumo do painel no cache
const CronJobTypeDashboardWarmup = "dashboard-warmup"

// CronJob é o que o handler precisa de um serviço agendado
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DashboardWarmupService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("job", cronType).Info("INIT - RunCronJob")

		var job CronJob
		switch cronType {
		case CronJobTypeDashboardWarmup:
			job = services.DashboardWarmupService
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-warmup", nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento do painel não disponível", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		if !job.TriggerManualSync() {
			message = "Cron job já está em execução"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DashboardWarmupService != nil {
			status[CronJobTypeDashboardWarmup] = services.DashboardWarmupService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
