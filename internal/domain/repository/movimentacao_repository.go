package repository

import "github.com/caiomf/barbearia-api/internal/domain/entity"

// MovimentacaoRepository define o porto do log de movimentações (append-only).
type MovimentacaoRepository interface {
	Criar(mov *entity.Movimentacao) error
	ListarPorProduto(produtoID int64) ([]*entity.Movimentacao, error)
	// ExcluirPorProduto remove o histórico do produto; usado apenas pela
	// exclusão em cascata, dentro da mesma transação.
	ExcluirPorProduto(produtoID int64) error
}
