package repository

import "github.com/shopspring/decimal"

// ResumoServicoResult linha crua da consulta de serviços agrupada por
// (servico, barbeiro). A DB produz; o caso de uso converte em DTO.
type ResumoServicoResult struct {
	Servico    string
	Barbeiro   string
	Quantidade int
	Total      decimal.Decimal
}

// ResumoCaixaResult linha crua da consulta de caixa por produto.
// Produtos sem movimentação no período aparecem com agregados zerados
// (left join preservado).
type ResumoCaixaResult struct {
	ProdutoID   int64
	Nome        string
	QtdEntrada  float64
	QtdSaida    float64
	TotalCompra decimal.Decimal
	TotalVenda  decimal.Decimal
}

// RelatorioRepository define as consultas de leitura dos relatórios.
// As implementações são read-only; inicio/fim chegam como "YYYY-MM-DD"
// (vazios = sem filtro de período) e a implementação expande para o dia
// inteiro [inicio 00:00:00, fim 23:59:59].
type RelatorioRepository interface {
	// ResumoServicos devolve as linhas agrupadas e o total geral do período.
	ResumoServicos(inicio, fim string) ([]ResumoServicoResult, decimal.Decimal, error)
	// ResumoCaixa devolve os agregados por produto; produtoID > 0 restringe
	// a um único produto.
	ResumoCaixa(inicio, fim string, produtoID int64) ([]ResumoCaixaResult, error)
}
