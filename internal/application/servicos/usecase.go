package servicos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/domain"
	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
	"github.com/caiomf/barbearia-api/pkg/logger"
)

// UseCase registra serviços prestados e expõe a tabela fixa de preços.
type UseCase struct {
	servicoRepo repository.ServicoRepository
	log         *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(servicoRepo repository.ServicoRepository, log *logger.Logger) *UseCase {
	return &UseCase{servicoRepo: servicoRepo, log: log}
}

// Registrar valida e insere um serviço prestado com timestamp de agora.
// Sucesso é err == nil; falha de validação não escreve nada.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarServicoRequest) (*dto.ServicoResponse, error) {
	nome := strings.TrimSpace(in.Servico)
	barbeiro := strings.TrimSpace(in.Barbeiro)
	if nome == "" || barbeiro == "" {
		return nil, fmt.Errorf("%w: serviço e barbeiro são obrigatórios", domain.ErrValidacao)
	}
	valor, err := decimal.NewFromString(strings.TrimSpace(in.Valor))
	if err != nil {
		return nil, fmt.Errorf("%w: valor deve ser um número válido", domain.ErrValidacao)
	}
	if !valor.IsPositive() {
		return nil, fmt.Errorf("%w: o valor deve ser maior que zero", domain.ErrValidacao)
	}

	servico := &entity.Servico{
		Servico:  nome,
		Valor:    valor,
		Barbeiro: barbeiro,
		DataHora: time.Now(),
	}
	if err := uc.servicoRepo.Criar(servico); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("servico", nome).
		Str("barbeiro", barbeiro).
		Str("valor", valor.String()).
		Msg("serviço registrado")

	return &dto.ServicoResponse{
		ID:       servico.ID,
		Servico:  servico.Servico,
		Valor:    servico.Valor,
		Barbeiro: servico.Barbeiro,
		DataHora: servico.DataHora.Format(entity.LayoutDataHora),
	}, nil
}

// TabelaPrecos devolve os serviços oferecidos com preço sugerido e a equipe.
func (uc *UseCase) TabelaPrecos() *dto.TabelaPrecosResponse {
	return &dto.TabelaPrecosResponse{
		Servicos:  entity.TabelaPrecos(),
		Barbeiros: entity.Barbeiros,
	}
}
