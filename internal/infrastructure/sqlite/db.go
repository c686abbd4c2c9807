// Package sqlite implementa os portos de persistência sobre o arquivo SQLite
// local da barbearia (database/sql + mattn/go-sqlite3).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/caiomf/barbearia-api/pkg/config"
)

// Querier abstrai *sql.DB e *sql.Tx para que o mesmo repositório rode fora
// ou dentro de uma transação.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open abre (ou cria) o arquivo do banco e inicializa o esquema.
// MaxOpenConns(1) mantém a disciplina de escritor único do arquivo local;
// o pool do database/sql dá a mesma garantia de conexão sem vazamento que a
// abertura por operação dava no desenho original.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("abrir banco: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping banco: %w", err)
	}
	if err := inicializarEsquema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// inicializarEsquema cria as tabelas se ausentes e adiciona de forma
// idempotente as colunas de preço a bancos criados por versões antigas.
func inicializarEsquema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS produtos (
			id INTEGER PRIMARY KEY,
			nome TEXT NOT NULL,
			categoria TEXT NOT NULL,
			quantidade REAL NOT NULL,
			minimo INTEGER NOT NULL,
			preco_custo REAL DEFAULT 0,
			preco_venda REAL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS movimentacoes (
			id INTEGER PRIMARY KEY,
			produto_id INTEGER NOT NULL,
			tipo TEXT NOT NULL,
			quantidade REAL NOT NULL,
			preco_unitario REAL NOT NULL,
			data_hora TEXT NOT NULL,
			FOREIGN KEY (produto_id) REFERENCES produtos (id)
		)`,
		`CREATE TABLE IF NOT EXISTS servicos (
			id INTEGER PRIMARY KEY,
			servico TEXT NOT NULL,
			valor REAL NOT NULL,
			barbeiro TEXT NOT NULL,
			data_hora TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("criar esquema: %w", err)
		}
	}

	alters := []string{
		`ALTER TABLE produtos ADD COLUMN preco_custo REAL DEFAULT 0`,
		`ALTER TABLE produtos ADD COLUMN preco_venda REAL DEFAULT 0`,
	}
	for _, stmt := range alters {
		if _, err := db.ExecContext(ctx, stmt); err != nil && !colunaJaExiste(err) {
			return fmt.Errorf("ajustar esquema: %w", err)
		}
	}
	return nil
}

// colunaJaExiste identifica o erro "duplicate column name" do SQLite,
// ignorado de propósito nos ALTERs de migração.
func colunaJaExiste(err error) bool {
	return strings.Contains(err.Error(), "duplicate column name")
}
