package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/database/postgres"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
	"github.com/shopspring/decimal"
)

const forecastTable = "gestao"

// ForecastRepository persiste a previsão de gastos corrente. A tabela guarda
// no máximo uma linha; cada Set substitui o valor anterior (last write wins).
// Get devolve nil quando nenhuma previsão foi definida, para que "sem dado"
// seja distinguível de "previsão igual a zero".
type ForecastRepository interface {
	Set(amount decimal.Decimal) (*domain.ExpenseForecast, error)
	Get() (*domain.ExpenseForecast, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) Set(amount decimal.Decimal) (*domain.ExpenseForecast, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(forecastTable).
		Columns("id", "previsao_gastos").
		Values(1, amount).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				previsao_gastos = EXCLUDED.previsao_gastos,
				updated_at = NOW()
			RETURNING updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	forecast := &domain.ExpenseForecast{Amount: amount}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&forecast.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar previsão de gastos: %w", err)
	}

	return forecast, nil
}

func (r *forecastRepository) Get() (*domain.ExpenseForecast, error) {
	query, args, err := squirrel.
		Select("previsao_gastos", "updated_at").
		From(forecastTable).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	forecast := &domain.ExpenseForecast{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&forecast.Amount, &forecast.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear previsão de gastos: %w", err)
	}

	return forecast, nil
}
