package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre SQLite.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador do log de movimentações.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Criar insere um registro no log (append-only).
func (r *MovimentacaoRepo) Criar(mov *entity.Movimentacao) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO movimentacoes (produto_id, tipo, quantidade, preco_unitario, data_hora)
		 VALUES (?, ?, ?, ?, ?)`,
		mov.ProdutoID, mov.Tipo, mov.Quantidade,
		mov.PrecoUnitario.InexactFloat64(),
		mov.DataHora.Format(entity.LayoutDataHora),
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id da movimentacao: %w", err)
	}
	mov.ID = id
	return nil
}

// ListarPorProduto devolve o histórico do produto, do mais recente ao mais antigo.
func (r *MovimentacaoRepo) ListarPorProduto(produtoID int64) ([]*entity.Movimentacao, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, produto_id, tipo, quantidade, preco_unitario, data_hora
		 FROM movimentacoes WHERE produto_id = ?
		 ORDER BY datetime(data_hora) DESC, id DESC`, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var preco float64
		var dataHora string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &preco, &dataHora); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		m.PrecoUnitario = decimal.NewFromFloat(preco)
		m.DataHora, err = time.ParseInLocation(entity.LayoutDataHora, dataHora, time.Local)
		if err != nil {
			return nil, fmt.Errorf("data_hora %q: %w", dataHora, err)
		}
		lista = append(lista, &m)
	}
	return lista, rows.Err()
}

// ExcluirPorProduto remove o histórico do produto (exclusão em cascata).
func (r *MovimentacaoRepo) ExcluirPorProduto(produtoID int64) error {
	_, err := r.q.ExecContext(context.Background(),
		`DELETE FROM movimentacoes WHERE produto_id = ?`, produtoID)
	if err != nil {
		return fmt.Errorf("delete movimentacoes: %w", err)
	}
	return nil
}
