package sqlite

import (
	"context"
	"fmt"

	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

var _ repository.ServicoRepository = (*ServicoRepo)(nil)

// ServicoRepo implementação do porto ServicoRepository sobre SQLite.
type ServicoRepo struct {
	q Querier
}

// NewServicoRepository constrói o adaptador do log de serviços.
func NewServicoRepository(q Querier) *ServicoRepo {
	return &ServicoRepo{q: q}
}

// Criar insere um serviço prestado (append-only).
func (r *ServicoRepo) Criar(servico *entity.Servico) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO servicos (servico, valor, barbeiro, data_hora)
		 VALUES (?, ?, ?, ?)`,
		servico.Servico, servico.Valor.InexactFloat64(), servico.Barbeiro,
		servico.DataHora.Format(entity.LayoutDataHora),
	)
	if err != nil {
		return fmt.Errorf("insert servico: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id do servico: %w", err)
	}
	servico.ID = id
	return nil
}
