package estoque_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/application/estoque"
	"github.com/caiomf/barbearia-api/internal/domain"
	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/infrastructure/sqlite"
	"github.com/caiomf/barbearia-api/pkg/config"
	"github.com/caiomf/barbearia-api/pkg/logger"
)

func novoUseCase(t *testing.T) (*estoque.UseCase, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.DBConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := estoque.NewUseCase(
		sqlite.NewTxRunner(db),
		sqlite.NewProdutoRepository(db),
		sqlite.NewMovimentacaoRepository(db),
		log,
	)
	return uc, db
}

func cadastrar(t *testing.T, uc *estoque.UseCase, nome, categoria, quantidade, minimo string) *dto.ProdutoResponse {
	t.Helper()
	p, err := uc.CadastrarProduto(context.Background(), dto.CadastrarProdutoRequest{
		Nome: nome, Categoria: categoria, Quantidade: quantidade, Minimo: minimo,
	})
	require.NoError(t, err)
	return p
}

func TestCadastrarProduto(t *testing.T) {
	uc, _ := novoUseCase(t)

	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "2")
	assert.NotZero(t, p.ID)
	assert.Equal(t, 10.0, p.Quantidade)
	assert.Equal(t, 2, p.Minimo)
	assert.True(t, p.PrecoCusto.IsZero(), "preço de custo inicia zerado")
	assert.True(t, p.PrecoVenda.IsZero(), "preço de venda inicia zerado")
	assert.False(t, p.AbaixoMinimo)
}

func TestCadastrarProduto_Invalido(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	casos := []dto.CadastrarProdutoRequest{
		{Nome: "", Categoria: "Pomada", Quantidade: "10", Minimo: "2"},
		{Nome: "  ", Categoria: "Pomada", Quantidade: "10", Minimo: "2"},
		{Nome: "Pomada X", Categoria: "", Quantidade: "10", Minimo: "2"},
		{Nome: "Pomada X", Categoria: "Pomada", Quantidade: "abc", Minimo: "2"},
		{Nome: "Pomada X", Categoria: "Pomada", Quantidade: "10.5.1", Minimo: "2"},
		{Nome: "Pomada X", Categoria: "Pomada", Quantidade: "-5", Minimo: "2"},
		{Nome: "Pomada X", Categoria: "Pomada", Quantidade: "10", Minimo: "2.5"},
	}
	for _, in := range casos {
		_, err := uc.CadastrarProduto(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidacao, "entrada: %+v", in)
	}

	// Nada vazou para o banco.
	lista, err := uc.ListarProdutos(ctx)
	require.NoError(t, err)
	assert.Zero(t, lista.Total)
}

func TestAjustarEstoque_SaidaComAlerta(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "2")
	_, err := uc.AtualizarPrecos(ctx, p.ID, dto.AtualizarPrecosRequest{
		PrecoCusto: "12.00", PrecoVenda: "25.00",
	})
	require.NoError(t, err)

	resp, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{
		Delta: "-9", Tipo: entity.MovimentacaoSaida,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.NovaQuantidade)

	// Saída registra a magnitude do delta com o preço de venda vigente.
	require.NotNil(t, resp.Movimentacao)
	assert.Equal(t, entity.MovimentacaoSaida, resp.Movimentacao.Tipo)
	assert.Equal(t, 9.0, resp.Movimentacao.Quantidade)
	assert.True(t, resp.Movimentacao.PrecoUnitario.Equal(decimal.NewFromInt(25)))

	// 1 < 2: alerta informativo, sem desfazer o ajuste.
	require.NotNil(t, resp.Alerta)
	assert.Equal(t, "Pomada X", resp.Alerta.Produto)
	assert.Equal(t, 1.0, resp.Alerta.Quantidade)
	assert.Equal(t, 2, resp.Alerta.Minimo)
}

func TestAjustarEstoque_EntradaUsaPrecoCusto(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Shampoo Y", "Shampoo", "5", "1")
	_, err := uc.AtualizarPrecos(ctx, p.ID, dto.AtualizarPrecosRequest{
		PrecoCusto: "12.00", PrecoVenda: "25.00",
	})
	require.NoError(t, err)

	resp, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{
		Delta: "3", Tipo: entity.MovimentacaoEntrada,
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, resp.NovaQuantidade)
	require.NotNil(t, resp.Movimentacao)
	assert.Equal(t, entity.MovimentacaoEntrada, resp.Movimentacao.Tipo)
	assert.Equal(t, 3.0, resp.Movimentacao.Quantidade)
	assert.True(t, resp.Movimentacao.PrecoUnitario.Equal(decimal.NewFromInt(12)))
	assert.Nil(t, resp.Alerta)
}

func TestAjustarEstoque_TipoDesconhecidoViraSaida(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Óleo Z", "Óleo", "5", "0")
	resp, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{
		Delta: "-2", Tipo: "AJUSTE",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Movimentacao)
	assert.Equal(t, entity.MovimentacaoSaida, resp.Movimentacao.Tipo)
}

func TestAjustarEstoque_SemTipoNaoRegistraMovimentacao(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Pente", "Acessório", "5", "4")
	resp, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{Delta: "-2"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, resp.NovaQuantidade)
	assert.Nil(t, resp.Movimentacao)
	// Alerta independe do registro de movimentação.
	require.NotNil(t, resp.Alerta)

	hist, err := uc.HistoricoMovimentacoes(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, hist.Total)
}

func TestAjustarEstoque_Insuficiente(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "2")
	_, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{
		Delta: "-11", Tipo: entity.MovimentacaoSaida,
	})
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	// Rejeição total: quantidade intacta e nenhuma movimentação gravada.
	lista, err := uc.ListarProdutos(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, 10.0, lista.Produtos[0].Quantidade)

	hist, err := uc.HistoricoMovimentacoes(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, hist.Total)
}

func TestAjustarEstoque_ZerarEstoque(t *testing.T) {
	uc, _ := novoUseCase(t)

	p := cadastrar(t, uc, "Lâmina W", "Lâmina", "4", "0")
	resp, err := uc.AjustarEstoque(context.Background(), p.ID, dto.AjustarEstoqueRequest{
		Delta: "-4", Tipo: entity.MovimentacaoSaida,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.NovaQuantidade)
	// 0 < 0 é falso: sem alerta com mínimo zero.
	assert.Nil(t, resp.Alerta)
}

func TestAjustarEstoque_ErrosDeEntrada(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()
	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "2")

	_, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{Delta: "abc"})
	assert.ErrorIs(t, err, domain.ErrValidacao)

	_, err = uc.AjustarEstoque(ctx, 999, dto.AjustarEstoqueRequest{Delta: "1"})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestAtualizarPrecos(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()
	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "2")

	out, err := uc.AtualizarPrecos(ctx, p.ID, dto.AtualizarPrecosRequest{
		PrecoCusto: "12.50", PrecoVenda: "30",
	})
	require.NoError(t, err)
	assert.True(t, out.PrecoCusto.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, out.PrecoVenda.Equal(decimal.NewFromInt(30)))

	_, err = uc.AtualizarPrecos(ctx, p.ID, dto.AtualizarPrecosRequest{
		PrecoCusto: "-1", PrecoVenda: "30",
	})
	assert.ErrorIs(t, err, domain.ErrValidacao)

	_, err = uc.AtualizarPrecos(ctx, 999, dto.AtualizarPrecosRequest{
		PrecoCusto: "1", PrecoVenda: "2",
	})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestExcluirProduto_Cascata(t *testing.T) {
	uc, db := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "2")
	_, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{
		Delta: "-3", Tipo: entity.MovimentacaoSaida,
	})
	require.NoError(t, err)

	require.NoError(t, uc.ExcluirProduto(ctx, p.ID))

	_, err = uc.HistoricoMovimentacoes(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)

	// O histórico sumiu junto: o log órfão não sobrevive à exclusão.
	movs, err := sqlite.NewMovimentacaoRepository(db).ListarPorProduto(p.ID)
	require.NoError(t, err)
	assert.Empty(t, movs)

	// O caixa também não devolve mais nada para o id excluído.
	caixa, err := sqlite.NewRelatorioRepository(db).ResumoCaixa("", "", p.ID)
	require.NoError(t, err)
	assert.Empty(t, caixa)

	assert.ErrorIs(t, uc.ExcluirProduto(ctx, p.ID), domain.ErrNaoEncontrado)
}

func TestFiltrarProdutos(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	cadastrar(t, uc, "Pomada Modeladora", "Pomada", "10", "2")
	cadastrar(t, uc, "Pomada em Gel", "Pomada", "5", "1")
	cadastrar(t, uc, "Shampoo Anticaspa", "Shampoo", "3", "1")

	// Busca por substring, sem distinguir maiúsculas.
	lista, err := uc.FiltrarProdutos(ctx, "poMaDa")
	require.NoError(t, err)
	assert.Equal(t, 2, lista.Total)

	lista, err = uc.FiltrarProdutos(ctx, "gel")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "Pomada em Gel", lista.Produtos[0].Nome)

	// Termo vazio devolve tudo.
	lista, err = uc.FiltrarProdutos(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, 3, lista.Total)

	lista, err = uc.FiltrarProdutos(ctx, "inexistente")
	require.NoError(t, err)
	assert.Zero(t, lista.Total)
}

func TestFiltrarProdutos_CacheFrio(t *testing.T) {
	uc, db := novoUseCase(t)
	ctx := context.Background()

	// Produto inserido por fora do caso de uso: o snapshot ainda não o viu.
	p := &entity.Produto{Nome: "Pomada X", Categoria: "Pomada", Quantidade: 1}
	require.NoError(t, sqlite.NewProdutoRepository(db).Criar(p))

	lista, err := uc.FiltrarProdutos(ctx, "pomada")
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)
}

func TestHistoricoMovimentacoes_Ordenacao(t *testing.T) {
	uc, _ := novoUseCase(t)
	ctx := context.Background()

	p := cadastrar(t, uc, "Pomada X", "Pomada", "10", "0")
	for _, delta := range []string{"2", "-1", "-3"} {
		_, err := uc.AjustarEstoque(ctx, p.ID, dto.AjustarEstoqueRequest{Delta: delta, Tipo: "X"})
		require.NoError(t, err)
	}

	hist, err := uc.HistoricoMovimentacoes(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, hist.Total)
	// Mais recente primeiro (desempate por id decrescente).
	assert.Equal(t, 3.0, hist.Movimentacoes[0].Quantidade)
	assert.Equal(t, 1.0, hist.Movimentacoes[1].Quantidade)
	assert.Equal(t, 2.0, hist.Movimentacoes[2].Quantidade)
}
