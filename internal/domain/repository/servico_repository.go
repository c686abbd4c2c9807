package repository

import "github.com/caiomf/barbearia-api/internal/domain/entity"

// ServicoRepository define o porto do log de serviços prestados (append-only).
type ServicoRepository interface {
	Criar(servico *entity.Servico) error
}
