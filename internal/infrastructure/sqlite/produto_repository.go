package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre SQLite
// (usável com *sql.DB ou *sql.Tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Criar persiste um novo produto. Preços iniciam em 0 no cadastro.
func (r *ProdutoRepo) Criar(produto *entity.Produto) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO produtos (nome, categoria, quantidade, minimo, preco_custo, preco_venda)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		produto.Nome, produto.Categoria, produto.Quantidade, produto.Minimo,
		produto.PrecoCusto.InexactFloat64(), produto.PrecoVenda.InexactFloat64(),
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id do produto: %w", err)
	}
	produto.ID = id
	return nil
}

// BuscarPorID obtém um produto por ID; (nil, nil) quando não existe.
func (r *ProdutoRepo) BuscarPorID(id int64) (*entity.Produto, error) {
	row := r.q.QueryRowContext(context.Background(),
		`SELECT id, nome, categoria, quantidade, minimo, preco_custo, preco_venda
		 FROM produtos WHERE id = ?`, id)
	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// AtualizarQuantidade persiste a nova quantidade calculada pelo ajuste.
func (r *ProdutoRepo) AtualizarQuantidade(id int64, quantidade float64) error {
	_, err := r.q.ExecContext(context.Background(),
		`UPDATE produtos SET quantidade = ? WHERE id = ?`, quantidade, id)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// AtualizarPrecos sobrescreve os dois preços do produto.
func (r *ProdutoRepo) AtualizarPrecos(id int64, custo, venda decimal.Decimal) error {
	_, err := r.q.ExecContext(context.Background(),
		`UPDATE produtos SET preco_custo = ?, preco_venda = ? WHERE id = ?`,
		custo.InexactFloat64(), venda.InexactFloat64(), id)
	if err != nil {
		return fmt.Errorf("update precos: %w", err)
	}
	return nil
}

// Listar devolve todos os produtos ordenados por categoria e nome.
func (r *ProdutoRepo) Listar() ([]*entity.Produto, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, nome, categoria, quantidade, minimo, preco_custo, preco_venda
		 FROM produtos ORDER BY categoria, nome`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		lista = append(lista, p)
	}
	return lista, rows.Err()
}

// Excluir remove o produto por ID (o histórico é removido pelo caller, na
// mesma transação).
func (r *ProdutoRepo) Excluir(id int64) error {
	_, err := r.q.ExecContext(context.Background(),
		`DELETE FROM produtos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduto(s scanner) (*entity.Produto, error) {
	var p entity.Produto
	var custo, venda float64
	if err := s.Scan(&p.ID, &p.Nome, &p.Categoria, &p.Quantidade, &p.Minimo, &custo, &venda); err != nil {
		return nil, err
	}
	p.PrecoCusto = decimal.NewFromFloat(custo)
	p.PrecoVenda = decimal.NewFromFloat(venda)
	return &p, nil
}
