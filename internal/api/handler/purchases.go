package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/ledgering"
	"github.com/gpaizante/gestao-caixa-api/pkg/apiErrors"
	"github.com/gpaizante/gestao-caixa-api/pkg/log"
	"github.com/gpaizante/gestao-caixa-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// ListPurchases lista todas as entradas de compra
func ListPurchases(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entries, err := service.ListPurchases()
		if err != nil {
			logger.WithError(err).Error("Erro ao listar entradas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas", nil)
			return
		}

		response := make([]purchaseResponse, 0, len(entries))
		for _, entry := range entries {
			response = append(response, toPurchaseResponse(entry))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreatePurchase registra uma nova entrada de compra
func CreatePurchase(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req purchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da entrada inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		entry := &domain.PurchaseEntry{
			Date:            *date,
			Supplier:        req.Supplier,
			Product:         req.Product,
			Price:           req.Price,
			PaymentTermDays: req.TermDays,
		}

		created, err := service.AddPurchase(entry)
		if err != nil {
			writeLedgerError(w, logger, err, "Erro ao registrar entrada")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toPurchaseResponse(created)); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// DeletePurchase apaga uma entrada de compra pelo ID
func DeletePurchase(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := parseEntryID(w, r)
		if !ok {
			return
		}

		if err := service.DeletePurchase(id); err != nil {
			writeLedgerError(w, logger, err, "Erro ao apagar entrada")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// parseEntryID extrai e valida o parâmetro :id da URL
func parseEntryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}

	return id, true
}

// writeLedgerError traduz os erros do livro-razão para códigos da API
func writeLedgerError(w http.ResponseWriter, logger log.Logger, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, ledgering.ErrMissingRequiredData):
		apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrMissingRequiredData))
	case errors.Is(err, ledgering.ErrMissingDate):
		apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrMissingRequiredData))
	case errors.Is(err, ledgering.ErrNegativeValue):
		apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrNegativeValue))
	case errors.Is(err, ledgering.ErrEntryNotFound):
		apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrResourceNotFound))
	default:
		logger.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMessage, nil)
	}
}
