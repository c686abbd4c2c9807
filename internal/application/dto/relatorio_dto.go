package dto

import "github.com/shopspring/decimal"

// PeriodoDTO intervalo de datas do relatório (YYYY-MM-DD; vazios = sem filtro).
type PeriodoDTO struct {
	Inicio string `json:"inicio,omitempty"`
	Fim    string `json:"fim,omitempty"`
}

// ── Serviços ─────────────────────────────────────────────

// GrupoServicoDTO agregado por (servico, barbeiro).
type GrupoServicoDTO struct {
	Servico    string          `json:"servico"`
	Barbeiro   string          `json:"barbeiro"`
	Quantidade int             `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

// ResumoServicosDTO resposta de GET /api/relatorios/servicos.
type ResumoServicosDTO struct {
	Periodo       PeriodoDTO        `json:"periodo"`
	Grupos        []GrupoServicoDTO `json:"grupos"`
	TotalServicos decimal.Decimal   `json:"total_servicos"`
}

// ── Caixa ────────────────────────────────────────────────

// CaixaProdutoDTO agregados de movimentação por produto.
// Lucro = TotalVenda - TotalCompra.
type CaixaProdutoDTO struct {
	ProdutoID   int64           `json:"produto_id"`
	Nome        string          `json:"nome"`
	QtdEntrada  float64         `json:"qtd_entrada"`
	QtdSaida    float64         `json:"qtd_saida"`
	TotalCompra decimal.Decimal `json:"total_compra"`
	TotalVenda  decimal.Decimal `json:"total_venda"`
	Lucro       decimal.Decimal `json:"lucro"`
}

// ResumoCaixaDTO resposta de GET /api/relatorios/caixa.
type ResumoCaixaDTO struct {
	Periodo      PeriodoDTO        `json:"periodo"`
	Produtos     []CaixaProdutoDTO `json:"produtos"`
	TotalCompras decimal.Decimal   `json:"total_compras"`
	TotalVendas  decimal.Decimal   `json:"total_vendas"`
	LucroTotal   decimal.Decimal   `json:"lucro_total"`
}

// ── Fechamento ───────────────────────────────────────────

// FechamentoDTO fechamento de caixa do período: movimentação de produtos,
// serviços prestados e totais combinados.
// TotalGeral = TotalServicos + LucroProdutos.
type FechamentoDTO struct {
	Periodo       PeriodoDTO        `json:"periodo"`
	Produtos      []CaixaProdutoDTO `json:"produtos"`
	Servicos      []GrupoServicoDTO `json:"servicos"`
	TotalCompras  decimal.Decimal   `json:"total_compras"`
	TotalVendas   decimal.Decimal   `json:"total_vendas"`
	LucroProdutos decimal.Decimal   `json:"lucro_produtos"`
	TotalServicos decimal.Decimal   `json:"total_servicos"`
	TotalGeral    decimal.Decimal   `json:"total_geral"`
}
