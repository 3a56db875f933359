// Package script prepara o esquema do banco na subida da aplicação. Os
// comandos são idempotentes e podem rodar em todo boot.
package script

import (
	"context"
	"database/sql"
	"time"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS entradas (
		id BIGSERIAL PRIMARY KEY,
		data_entrada DATE NOT NULL,
		fornecedor TEXT NOT NULL,
		produto TEXT NOT NULL,
		preco_compra NUMERIC(15,4) NOT NULL,
		prazo_pagto INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vendas (
		id BIGSERIAL PRIMARY KEY,
		data_venda DATE NOT NULL,
		cliente TEXT NOT NULL,
		produto TEXT NOT NULL,
		preco_venda NUMERIC(15,4) NOT NULL,
		prazo_pagto INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS gestao (
		id INTEGER PRIMARY KEY,
		previsao_gastos NUMERIC(15,4) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS gestao_historico (
		id BIGSERIAL PRIMARY KEY,
		data_calculo TIMESTAMPTZ NOT NULL,
		pmre NUMERIC(15,4) NOT NULL,
		pmrv NUMERIC(15,4) NOT NULL,
		pmpf NUMERIC(15,4) NOT NULL,
		ciclo_operacional NUMERIC(15,4) NOT NULL,
		ciclo_caixa NUMERIC(15,4) NOT NULL,
		saldo_minimo NUMERIC(15,4) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_gestao_historico_data_calculo
		ON gestao_historico (data_calculo, id)`,
}

// Run cria as tabelas do livro-razão, da previsão e do histórico
func Run(ctx context.Context, conn *postgres.Connection) error {
	logrus.Info("Preparando esquema do banco de dados")
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Esquema do banco de dados pronto")
	return nil
}
