package handler

import (
	"errors"
	"net/http"

	"github.com/gpaizante/gestao-caixa-api/internal/usecases/forecasting"
	"github.com/gpaizante/gestao-caixa-api/pkg/apiErrors"
	"github.com/gpaizante/gestao-caixa-api/pkg/log"
)

// ListHistory lista os snapshots do histórico, em ordem ascendente de data
func ListHistory(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshots, err := service.ListHistory()
		if err != nil {
			logger.WithError(err).Error("Erro ao listar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico", nil)
			return
		}

		response := make([]snapshotResponse, 0, len(snapshots))
		for _, snapshot := range snapshots {
			response = append(response, toSnapshotResponse(snapshot))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteSnapshot apaga um snapshot do histórico pelo ID
func DeleteSnapshot(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := parseEntryID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSnapshot(id); err != nil {
			if errors.Is(err, forecasting.ErrSnapshotNotFound) {
				apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrResourceNotFound))
				return
			}
			logger.WithError(err).Error("Erro ao apagar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao apagar snapshot", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
