package forecasting

import "github.com/pkg/errors"

// Erros específicos para o contexto de previsão e histórico
var (
	// Erros de validação
	ErrNegativeAmount = errors.New("previsão de gastos não pode ser negativa")

	// Erros de recurso
	ErrSnapshotNotFound = errors.New("snapshot não encontrado no histórico")
	ErrForecastNotSet   = errors.New("nenhuma previsão de gastos definida")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
