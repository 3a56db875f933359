package handler

import (
	"net/http"

	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/ledgering"
	"github.com/gpaizante/gestao-caixa-api/pkg/apiErrors"
	"github.com/gpaizante/gestao-caixa-api/pkg/log"
	"github.com/gpaizante/gestao-caixa-api/pkg/utils"
)

// ListSales lista todas as vendas
func ListSales(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entries, err := service.ListSales()
		if err != nil {
			logger.WithError(err).Error("Erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		response := make([]saleResponse, 0, len(entries))
		for _, entry := range entries {
			response = append(response, toSaleResponse(entry))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateSale registra uma nova venda
func CreateSale(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req saleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		entry := &domain.SaleEntry{
			Date:            *date,
			Customer:        req.Customer,
			Product:         req.Product,
			Price:           req.Price,
			PaymentTermDays: req.TermDays,
		}

		created, err := service.AddSale(entry)
		if err != nil {
			writeLedgerError(w, logger, err, "Erro ao registrar venda")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toSaleResponse(created)); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// DeleteSale apaga uma venda pelo ID
func DeleteSale(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := parseEntryID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSale(id); err != nil {
			writeLedgerError(w, logger, err, "Erro ao apagar venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
