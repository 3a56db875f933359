package handler

import (
	"errors"
	"net/http"

	"github.com/gpaizante/gestao-caixa-api/internal/usecases/forecasting"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/indicating"
	"github.com/gpaizante/gestao-caixa-api/pkg/apiErrors"
	"github.com/gpaizante/gestao-caixa-api/pkg/log"
)

// GetIndicators calcula e retorna os indicadores correntes do ciclo financeiro
func GetIndicators(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		indicators, err := service.CurrentIndicators(r.Context())
		if err != nil {
			if errors.Is(err, indicating.ErrNoData) {
				apiErrors.WriteError(w, apiErrors.ErrNoData, "Cadastre entradas, vendas e uma previsão de gastos para calcular os indicadores", nil)
				return
			}
			logger.WithError(err).Error("Erro ao calcular indicadores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular indicadores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toIndicatorsResponse(indicators)); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetForecast retorna a previsão de gastos corrente
func GetForecast(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		forecast, err := service.GetForecast()
		if err != nil {
			if errors.Is(err, forecasting.ErrForecastNotSet) {
				apiErrors.WriteError(w, apiErrors.ErrNoData, "Nenhuma previsão de gastos definida", nil)
				return
			}
			logger.WithError(err).Error("Erro ao buscar previsão")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar previsão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toForecastResponse(forecast)); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SetForecast grava uma nova previsão de gastos, recalcula os indicadores e,
// havendo dados, registra um snapshot no histórico
func SetForecast(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req forecastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.SetForecast(r.Context(), req.Amount)
		if err != nil {
			if errors.Is(err, forecasting.ErrNegativeAmount) {
				apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrNegativeValue))
				return
			}
			logger.WithError(err).Error("Erro ao gravar previsão")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar previsão", nil)
			return
		}

		response := setForecastResponse{
			Forecast: toForecastResponse(result.Forecast),
		}
		if result.Snapshot != nil {
			snapshot := toSnapshotResponse(result.Snapshot)
			response.Snapshot = &snapshot
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
