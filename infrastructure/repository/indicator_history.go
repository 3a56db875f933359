package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/database/postgres"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
)

const historyTable = "gestao_historico"

// IndicatorHistoryRepository persiste a série histórica de snapshots de
// indicadores. A série é append-only: snapshots nunca são atualizados, apenas
// criados e apagados por ID.
type IndicatorHistoryRepository interface {
	Insert(snapshot *domain.IndicatorSnapshot) (*domain.IndicatorSnapshot, error)
	List() ([]*domain.IndicatorSnapshot, error)
	Delete(id int64) error
}

type indicatorHistoryRepository struct {
	conn *postgres.Connection
}

func NewIndicatorHistoryRepository(conn *postgres.Connection) IndicatorHistoryRepository {
	return &indicatorHistoryRepository{
		conn: conn,
	}
}

func (r *indicatorHistoryRepository) Insert(snapshot *domain.IndicatorSnapshot) (*domain.IndicatorSnapshot, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(historyTable).
		Columns(
			"data_calculo",
			"pmre",
			"pmrv",
			"pmpf",
			"ciclo_operacional",
			"ciclo_caixa",
			"saldo_minimo",
		).
		Values(
			snapshot.ComputedAt.Format(time.DateOnly),
			snapshot.PMRE,
			snapshot.PMRV,
			snapshot.PMPF,
			snapshot.OperatingCycle,
			snapshot.CashCycle,
			snapshot.MinimumCashBalance,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created := *snapshot
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("erro ao gravar snapshot no histórico: %w", err)
	}

	return &created, nil
}

func (r *indicatorHistoryRepository) List() ([]*domain.IndicatorSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"data_calculo",
			"pmre",
			"pmrv",
			"pmpf",
			"ciclo_operacional",
			"ciclo_caixa",
			"saldo_minimo",
		).
		From(historyTable).
		OrderBy("data_calculo ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.IndicatorSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.IndicatorSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.ComputedAt,
			&snapshot.PMRE,
			&snapshot.PMRV,
			&snapshot.PMPF,
			&snapshot.OperatingCycle,
			&snapshot.CashCycle,
			&snapshot.MinimumCashBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *indicatorHistoryRepository) Delete(id int64) error {
	query, args, err := squirrel.
		Delete(historyTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
