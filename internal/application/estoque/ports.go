package estoque

import (
	"context"

	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade para a exclusão em
// cascata de produto + histórico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
