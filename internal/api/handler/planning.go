package handler

import (
	"net/http"

	"github.com/gpaizante/gestao-caixa-api/internal/usecases/planning"
	"github.com/gpaizante/gestao-caixa-api/pkg/apiErrors"
	"github.com/gpaizante/gestao-caixa-api/pkg/log"
	"github.com/gpaizante/gestao-caixa-api/pkg/utils"
	"github.com/shopspring/decimal"
)

type eoqRequest struct {
	Demand      decimal.Decimal `json:"demanda"`
	OrderCost   decimal.Decimal `json:"custoPedido"`
	HoldingCost decimal.Decimal `json:"custoManutencao"`
}

type eoqResponse struct {
	EconomicOrderQuantity float64 `json:"loteEconomico"`
	TotalInventoryCost    float64 `json:"custoEstoque"`
}

type cashTurnoverRequest struct {
	CashCycle decimal.Decimal `json:"cicloCaixa"`
}

type cashTurnoverResponse struct {
	CashTurnover float64 `json:"giroCaixa"`
}

type productivityRequest struct {
	QuantityProduced    decimal.Decimal `json:"quantidadeProduzida"`
	LaborHours          decimal.Decimal `json:"horasMaoDeObra"`
	LaborHourCost       decimal.Decimal `json:"custoHoraMaoDeObra"`
	MachineHours        decimal.Decimal `json:"horasMaquina"`
	MachineHourCost     decimal.Decimal `json:"custoHoraMaquina"`
	RawMaterialQuantity decimal.Decimal `json:"quantidadeMateriaPrima"`
	RawMaterialUnitCost decimal.Decimal `json:"custoUnitarioMateriaPrima"`
}

type productivityResponse struct {
	PhysicalProductivity float64 `json:"produtividadeFisica"`
	ValueProductivity    float64 `json:"produtividadeValor"`
	UnitCost             float64 `json:"custoUnitario"`
	TotalProductionCost  float64 `json:"custoTotalProducao"`
	LaborCost            float64 `json:"custoMaoDeObra"`
	MachineCost          float64 `json:"custoMaquina"`
	RawMaterialCost      float64 `json:"custoMateriaPrima"`
}

// ComputeEOQ calcula o lote econômico e o custo total de estoque
func ComputeEOQ() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req eoqRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Demand.IsNegative() || req.OrderCost.IsNegative() || req.HoldingCost.IsNegative() {
			apiErrors.WriteError(w, apiErrors.ErrNegativeValue, "Parâmetros do lote econômico não podem ser negativos", nil)
			return
		}

		result := planning.EOQ(req.Demand, req.OrderCost, req.HoldingCost)

		response := eoqResponse{
			EconomicOrderQuantity: utils.RoundForDisplay(result.EconomicOrderQuantity),
			TotalInventoryCost:    utils.RoundForDisplay(result.TotalInventoryCost),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ComputeCashTurnover calcula o giro de caixa a partir do ciclo de caixa
func ComputeCashTurnover() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req cashTurnoverRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response := cashTurnoverResponse{
			CashTurnover: utils.RoundForDisplay(planning.CashTurnover(req.CashCycle)),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ComputeProductivity calcula os indicadores de produtividade da produção
func ComputeProductivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req productivityRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.QuantityProduced.IsNegative() || req.LaborHours.IsNegative() || req.LaborHourCost.IsNegative() ||
			req.MachineHours.IsNegative() || req.MachineHourCost.IsNegative() ||
			req.RawMaterialQuantity.IsNegative() || req.RawMaterialUnitCost.IsNegative() {
			apiErrors.WriteError(w, apiErrors.ErrNegativeValue, "Parâmetros de produtividade não podem ser negativos", nil)
			return
		}

		result := planning.Productivity(planning.ProductivityInput{
			QuantityProduced:    req.QuantityProduced,
			LaborHours:          req.LaborHours,
			LaborHourCost:       req.LaborHourCost,
			MachineHours:        req.MachineHours,
			MachineHourCost:     req.MachineHourCost,
			RawMaterialQuantity: req.RawMaterialQuantity,
			RawMaterialUnitCost: req.RawMaterialUnitCost,
		})

		response := productivityResponse{
			PhysicalProductivity: utils.RoundForDisplay(result.PhysicalProductivity),
			ValueProductivity:    utils.RoundForDisplay(result.ValueProductivity),
			UnitCost:             utils.RoundForDisplay(result.UnitCost),
			TotalProductionCost:  utils.RoundForDisplay(result.TotalProductionCost),
			LaborCost:            utils.RoundForDisplay(result.LaborCost),
			MachineCost:          utils.RoundForDisplay(result.MachineCost),
			RawMaterialCost:      utils.RoundForDisplay(result.RawMaterialCost),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
