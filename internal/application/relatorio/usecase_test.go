package relatorio_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiomf/barbearia-api/internal/application/relatorio"
	"github.com/caiomf/barbearia-api/internal/domain"
	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/infrastructure/sqlite"
	"github.com/caiomf/barbearia-api/pkg/config"
)

func novoUseCase(t *testing.T) (*relatorio.UseCase, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.DBConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return relatorio.NewUseCase(sqlite.NewRelatorioRepository(db)), db
}

func semearJaneiro(t *testing.T, db *sql.DB) {
	t.Helper()
	jan10 := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	jan15 := time.Date(2025, time.January, 15, 14, 0, 0, 0, time.Local)

	servicoRepo := sqlite.NewServicoRepository(db)
	require.NoError(t, servicoRepo.Criar(&entity.Servico{
		Servico: "Corte", Valor: decimal.NewFromInt(40), Barbeiro: "Barbeiro 1", DataHora: jan10,
	}))
	require.NoError(t, servicoRepo.Criar(&entity.Servico{
		Servico: "Corte", Valor: decimal.NewFromInt(40), Barbeiro: "Barbeiro 1", DataHora: jan15,
	}))
	require.NoError(t, servicoRepo.Criar(&entity.Servico{
		Servico: "Barba", Valor: decimal.NewFromInt(30), Barbeiro: "Barbeiro 2", DataHora: jan15,
	}))

	pomada := &entity.Produto{Nome: "Pomada X", Categoria: "Pomada", Quantidade: 6}
	require.NoError(t, sqlite.NewProdutoRepository(db).Criar(pomada))
	movRepo := sqlite.NewMovimentacaoRepository(db)
	require.NoError(t, movRepo.Criar(&entity.Movimentacao{
		ProdutoID: pomada.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 10,
		PrecoUnitario: decimal.NewFromInt(12), DataHora: jan10,
	}))
	require.NoError(t, movRepo.Criar(&entity.Movimentacao{
		ProdutoID: pomada.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 4,
		PrecoUnitario: decimal.NewFromInt(25), DataHora: jan15,
	}))
}

func TestResumoServicos(t *testing.T) {
	uc, db := novoUseCase(t)
	semearJaneiro(t, db)

	out, err := uc.ResumoServicos(context.Background(), "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, out.Grupos, 2)

	assert.Equal(t, "Barba", out.Grupos[0].Servico)
	assert.Equal(t, "Barbeiro 2", out.Grupos[0].Barbeiro)
	assert.Equal(t, 1, out.Grupos[0].Quantidade)

	assert.Equal(t, "Corte", out.Grupos[1].Servico)
	assert.Equal(t, "Barbeiro 1", out.Grupos[1].Barbeiro)
	assert.Equal(t, 2, out.Grupos[1].Quantidade)
	assert.True(t, out.Grupos[1].Total.Equal(decimal.NewFromInt(80)))

	assert.True(t, out.TotalServicos.Equal(decimal.NewFromInt(110)))

	// Leitura pura: repetir a consulta devolve o mesmo resultado.
	repetido, err := uc.ResumoServicos(context.Background(), "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, out, repetido)
}

func TestResumoServicos_PeriodoIncompleto(t *testing.T) {
	uc, _ := novoUseCase(t)

	_, err := uc.ResumoServicos(context.Background(), "2025-01-01", "")
	assert.ErrorIs(t, err, domain.ErrValidacao)

	_, err = uc.ResumoServicos(context.Background(), "", "2025-01-31")
	assert.ErrorIs(t, err, domain.ErrValidacao)

	_, err = uc.ResumoServicos(context.Background(), "01/01/2025", "2025-01-31")
	assert.ErrorIs(t, err, domain.ErrValidacao)

	// Sem filtro algum é permitido.
	out, err := uc.ResumoServicos(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, out.Grupos)
	assert.True(t, out.TotalServicos.IsZero())
}

func TestResumoCaixa(t *testing.T) {
	uc, db := novoUseCase(t)
	semearJaneiro(t, db)

	out, err := uc.ResumoCaixa(context.Background(), "2025-01-01", "2025-01-31", 0)
	require.NoError(t, err)
	require.Len(t, out.Produtos, 1)

	linha := out.Produtos[0]
	assert.Equal(t, "Pomada X", linha.Nome)
	assert.Equal(t, 10.0, linha.QtdEntrada)
	assert.Equal(t, 4.0, linha.QtdSaida)
	assert.True(t, linha.TotalCompra.Equal(decimal.NewFromInt(120)))
	assert.True(t, linha.TotalVenda.Equal(decimal.NewFromInt(100)))
	assert.True(t, linha.Lucro.Equal(decimal.NewFromInt(-20)), "lucro = venda - compra, pode ser negativo")

	// Totais são a soma das linhas devolvidas.
	assert.True(t, out.TotalCompras.Equal(decimal.NewFromInt(120)))
	assert.True(t, out.TotalVendas.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.LucroTotal.Equal(decimal.NewFromInt(-20)))
}

func TestFechamento(t *testing.T) {
	uc, db := novoUseCase(t)
	semearJaneiro(t, db)

	out, err := uc.Fechamento(context.Background(), "2025-01-01", "2025-01-31")
	require.NoError(t, err)

	assert.Len(t, out.Produtos, 1)
	assert.Len(t, out.Servicos, 2)
	assert.True(t, out.TotalServicos.Equal(decimal.NewFromInt(110)))
	assert.True(t, out.LucroProdutos.Equal(decimal.NewFromInt(-20)))
	// Total geral combina serviços e lucro de produtos.
	assert.True(t, out.TotalGeral.Equal(decimal.NewFromInt(90)))
}

func TestFechamento_PeriodoSemDados(t *testing.T) {
	uc, db := novoUseCase(t)
	semearJaneiro(t, db)

	out, err := uc.Fechamento(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Empty(t, out.Servicos)
	// Produtos continuam listados (left join), só que zerados.
	require.Len(t, out.Produtos, 1)
	assert.True(t, out.Produtos[0].TotalVenda.IsZero())
	assert.True(t, out.TotalGeral.IsZero())
}
