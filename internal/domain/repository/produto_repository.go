package repository

import (
	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência para Produto (DIP).
type ProdutoRepository interface {
	// Criar insere o produto e preenche produto.ID com o id gerado.
	Criar(produto *entity.Produto) error
	// BuscarPorID devolve (nil, nil) quando o produto não existe.
	BuscarPorID(id int64) (*entity.Produto, error)
	// AtualizarQuantidade persiste apenas a nova quantidade (motor de estoque).
	AtualizarQuantidade(id int64, quantidade float64) error
	// AtualizarPrecos sobrescreve preço de custo e de venda.
	AtualizarPrecos(id int64, custo, venda decimal.Decimal) error
	// Listar devolve todos os produtos ordenados por categoria e nome.
	Listar() ([]*entity.Produto, error)
	Excluir(id int64) error
}
