package servicos_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/application/servicos"
	"github.com/caiomf/barbearia-api/internal/domain"
	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/infrastructure/sqlite"
	"github.com/caiomf/barbearia-api/pkg/config"
	"github.com/caiomf/barbearia-api/pkg/logger"
)

func novoUseCase(t *testing.T) *servicos.UseCase {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.DBConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return servicos.NewUseCase(sqlite.NewServicoRepository(db), log)
}

func TestRegistrar(t *testing.T) {
	uc := novoUseCase(t)

	out, err := uc.Registrar(context.Background(), dto.RegistrarServicoRequest{
		Servico: "Corte", Valor: "40", Barbeiro: "Barbeiro 1",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Corte", out.Servico)
	assert.Equal(t, "Barbeiro 1", out.Barbeiro)
	assert.True(t, out.Valor.Equal(decimal.NewFromInt(40)))
	assert.NotEmpty(t, out.DataHora)
}

func TestRegistrar_NormalizaEspacos(t *testing.T) {
	uc := novoUseCase(t)

	out, err := uc.Registrar(context.Background(), dto.RegistrarServicoRequest{
		Servico: "  Barba  ", Valor: " 30 ", Barbeiro: " Barbeiro 2 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Barba", out.Servico)
	assert.Equal(t, "Barbeiro 2", out.Barbeiro)
}

func TestRegistrar_Invalido(t *testing.T) {
	uc := novoUseCase(t)
	ctx := context.Background()

	casos := []dto.RegistrarServicoRequest{
		{Servico: "", Valor: "40", Barbeiro: "Barbeiro 1"},
		{Servico: "Corte", Valor: "40", Barbeiro: ""},
		{Servico: "Corte", Valor: "", Barbeiro: "Barbeiro 1"},
		{Servico: "Corte", Valor: "abc", Barbeiro: "Barbeiro 1"},
		{Servico: "Corte", Valor: "0", Barbeiro: "Barbeiro 1"},
		{Servico: "Corte", Valor: "-10", Barbeiro: "Barbeiro 1"},
	}
	for _, in := range casos {
		_, err := uc.Registrar(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidacao, "entrada: %+v", in)
	}
}

func TestTabelaPrecos(t *testing.T) {
	uc := novoUseCase(t)

	tabela := uc.TabelaPrecos()
	assert.Equal(t, entity.Barbeiros, tabela.Barbeiros)
	require.Contains(t, tabela.Servicos, "CORTE")
	assert.True(t, tabela.Servicos["CORTE"].Equal(decimal.NewFromInt(40)))
	require.Contains(t, tabela.Servicos, "PLATINADO")
	assert.True(t, tabela.Servicos["PLATINADO"].Equal(decimal.NewFromInt(200)))
	assert.Len(t, tabela.Servicos, 8)
}
