package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caiomf/barbearia-api/internal/application/estoque"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

var _ estoque.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner constrói o runner com o banco aberto.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	produtoRepo := NewProdutoRepository(tx)
	movRepo := NewMovimentacaoRepository(tx)

	if err := fn(produtoRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
