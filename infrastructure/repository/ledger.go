// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/database/postgres"
	"github.com/gpaizante/gestao-caixa-api/internal/domain"
)

const (
	purchasesTable = "entradas"
	salesTable     = "vendas"
)

// LedgerRepository persiste as duas coleções do livro-razão: entradas de
// compra e vendas. SnapshotLedgers lê as duas coleções em uma única transação
// REPEATABLE READ, para que o cálculo de indicadores nunca observe um estado
// misto entre escrita e leitura.
type LedgerRepository interface {
	InsertPurchase(entry *domain.PurchaseEntry) (*domain.PurchaseEntry, error)
	ListPurchases() ([]*domain.PurchaseEntry, error)
	DeletePurchase(id int64) error
	InsertSale(entry *domain.SaleEntry) (*domain.SaleEntry, error)
	ListSales() ([]*domain.SaleEntry, error)
	DeleteSale(id int64) error
	SnapshotLedgers(ctx context.Context) ([]*domain.PurchaseEntry, []*domain.SaleEntry, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

func (r *ledgerRepository) InsertPurchase(entry *domain.PurchaseEntry) (*domain.PurchaseEntry, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(purchasesTable).
		Columns("data_entrada", "fornecedor", "produto", "preco_compra", "prazo_pagto").
		Values(
			entry.Date.Format(time.DateOnly),
			entry.Supplier,
			entry.Product,
			entry.Price,
			entry.PaymentTermDays,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created := *entry
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir entrada: %w", err)
	}

	return &created, nil
}

func (r *ledgerRepository) ListPurchases() ([]*domain.PurchaseEntry, error) {
	query, args, err := selectPurchases().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanPurchases(rows)
}

func (r *ledgerRepository) DeletePurchase(id int64) error {
	return r.deleteByID(purchasesTable, id)
}

func (r *ledgerRepository) InsertSale(entry *domain.SaleEntry) (*domain.SaleEntry, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns("data_venda", "cliente", "produto", "preco_venda", "prazo_pagto").
		Values(
			entry.Date.Format(time.DateOnly),
			entry.Customer,
			entry.Product,
			entry.Price,
			entry.PaymentTermDays,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created := *entry
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return &created, nil
}

func (r *ledgerRepository) ListSales() ([]*domain.SaleEntry, error) {
	query, args, err := selectSales().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func (r *ledgerRepository) DeleteSale(id int64) error {
	return r.deleteByID(salesTable, id)
}

func (r *ledgerRepository) SnapshotLedgers(ctx context.Context) ([]*domain.PurchaseEntry, []*domain.SaleEntry, error) {
	var purchases []*domain.PurchaseEntry
	var sales []*domain.SaleEntry

	err := r.conn.RunInSnapshot(ctx, func(tx *sql.Tx) error {
		query, args, err := selectPurchases().ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
		defer rows.Close()

		if purchases, err = scanPurchases(rows); err != nil {
			return err
		}

		query, args, err = selectSales().ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err = tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
		defer rows.Close()

		sales, err = scanSales(rows)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return purchases, sales, nil
}

func (r *ledgerRepository) deleteByID(table string, id int64) error {
	query, args, err := squirrel.
		Delete(table).
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

func selectPurchases() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "data_entrada", "fornecedor", "produto", "preco_compra", "prazo_pagto", "created_at").
		From(purchasesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectSales() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "data_venda", "cliente", "produto", "preco_venda", "prazo_pagto", "created_at").
		From(salesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func scanPurchases(rows *sql.Rows) ([]*domain.PurchaseEntry, error) {
	entries := make([]*domain.PurchaseEntry, 0)
	for rows.Next() {
		entry := &domain.PurchaseEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Supplier,
			&entry.Product,
			&entry.Price,
			&entry.PaymentTermDays,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func scanSales(rows *sql.Rows) ([]*domain.SaleEntry, error) {
	entries := make([]*domain.SaleEntry, 0)
	for rows.Next() {
		entry := &domain.SaleEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Customer,
			&entry.Product,
			&entry.Price,
			&entry.PaymentTermDays,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
