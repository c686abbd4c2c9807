// Package pdf gera o fechamento de caixa em PDF (Maroto v2).
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo (opcional) │ Barbearia + Período              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Entradas | Saídas | Compras | Vendas |   │
//	│          Lucro                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Serviço | Barbeiro | Qtd | Total                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Total Serviços / Lucro Produtos / TOTAL GERAL      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// FechamentoPDFGenerator gera o relatório de fechamento de caixa em PDF.
// brandPath aponta a imagem de marca opcional; ausência do arquivo é
// tolerada (header sem logo).
type FechamentoPDFGenerator struct {
	brandPath string
}

// NewFechamentoPDFGenerator constrói o gerador.
func NewFechamentoPDFGenerator(brandPath string) *FechamentoPDFGenerator {
	return &FechamentoPDFGenerator{brandPath: brandPath}
}

// Gerar monta o PDF do fechamento e devolve seus bytes.
func (g *FechamentoPDFGenerator) Gerar(_ context.Context, fechamento *dto.FechamentoDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fechamento de Caixa", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(fechamento.Periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("Movimentação de Produtos"))
	m.AddRows(produtosHeaderRow())
	for _, p := range fechamento.Produtos {
		m.AddRows(produtoRow(p))
	}
	m.AddRows(produtosTotalRow(fechamento))

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Serviços Realizados"))
	m.AddRows(servicosHeaderRow())
	for _, s := range fechamento.Servicos {
		m.AddRows(servicoRow(s))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range resumoRows(fechamento) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: logo opcional à esquerda, título e período à direita.
func (g *FechamentoPDFGenerator) headerRow(periodo dto.PeriodoDTO) core.Row {
	intervalo := "Todo o histórico"
	if periodo.Inicio != "" {
		intervalo = fmt.Sprintf("De %s até %s", periodo.Inicio, periodo.Fim)
	}

	cols := []core.Col{}
	if g.brandPath != "" {
		if _, err := os.Stat(g.brandPath); err == nil {
			cols = append(cols, image.NewFromFileCol(2, g.brandPath, props.Rect{
				Center: true, Percent: 90,
			}))
		}
	}
	resto := 12 - 2*len(cols)
	cols = append(cols, col.New(resto).Add(
		text.New("Fechamento de Caixa", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
		text.New(intervalo, props.Text{Size: 9, Top: 9, Color: colorGray}),
	))
	return row.New(16).Add(cols...)
}

func sectionTitleRow(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
	))
}

func produtosHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(4, "Produto", align.Left),
		headerCell(1, "Entradas", align.Center),
		headerCell(1, "Saídas", align.Center),
		headerCell(2, "Compras (R$)", align.Right),
		headerCell(2, "Vendas (R$)", align.Right),
		headerCell(2, "Lucro (R$)", align.Right),
	)
}

func produtoRow(p dto.CaixaProdutoDTO) core.Row {
	return row.New(5).Add(
		bodyCell(4, p.Nome, align.Left),
		bodyCell(1, fmt.Sprintf("%g", p.QtdEntrada), align.Center),
		bodyCell(1, fmt.Sprintf("%g", p.QtdSaida), align.Center),
		bodyCell(2, dinheiro(p.TotalCompra), align.Right),
		bodyCell(2, dinheiro(p.TotalVenda), align.Right),
		bodyCell(2, dinheiro(p.Lucro), align.Right),
	)
}

func produtosTotalRow(f *dto.FechamentoDTO) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New(dinheiro(f.TotalCompras), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(dinheiro(f.TotalVendas), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(dinheiro(f.LucroProdutos), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func servicosHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(5, "Serviço", align.Left),
		headerCell(3, "Barbeiro", align.Left),
		headerCell(1, "Qtd", align.Center),
		headerCell(3, "Total (R$)", align.Right),
	)
}

func servicoRow(s dto.GrupoServicoDTO) core.Row {
	return row.New(5).Add(
		bodyCell(5, s.Servico, align.Left),
		bodyCell(3, s.Barbeiro, align.Left),
		bodyCell(1, fmt.Sprintf("%d", s.Quantidade), align.Center),
		bodyCell(3, dinheiro(s.Total), align.Right),
	)
}

func resumoRows(f *dto.FechamentoDTO) []core.Row {
	linha := func(rotulo, valor string, destaque bool) core.Row {
		estilo := fontstyle.Normal
		tamanho := 9.0
		if destaque {
			estilo = fontstyle.Bold
			tamanho = 11
		}
		return row.New(6).Add(
			col.New(8).Add(text.New(rotulo, props.Text{Style: estilo, Size: tamanho})),
			col.New(4).Add(text.New(valor, props.Text{Style: estilo, Size: tamanho, Align: align.Right})),
		)
	}
	return []core.Row{
		sectionTitleRow("Resumo do Período"),
		linha("Total em Serviços", dinheiro(f.TotalServicos), false),
		linha("Total em Produtos (lucro)", dinheiro(f.LucroProdutos), false),
		linha("TOTAL GERAL", dinheiro(f.TotalGeral), true),
	}
}

func headerCell(size int, texto string, a align.Type) core.Col {
	return col.New(size).Add(text.New(texto, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary,
	}))
}

func bodyCell(size int, texto string, a align.Type) core.Col {
	return col.New(size).Add(text.New(texto, props.Text{Size: 8, Align: a}))
}

func dinheiro(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}
