package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LayoutDataHora é o formato de texto dos timestamps persistidos.
const LayoutDataHora = "2006-01-02 15:04:05"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "ENTRADA" // compra / reposição
	MovimentacaoSaida   = "SAIDA"   // venda / consumo
)

// NormalizarTipoMovimentacao reduz qualquer tipo ao vocabulário da tabela:
// tudo que não for ENTRADA é SAIDA.
func NormalizarTipoMovimentacao(tipo string) string {
	if tipo == MovimentacaoEntrada {
		return MovimentacaoEntrada
	}
	return MovimentacaoSaida
}

// Movimentacao é um registro imutável do log de movimentações (append-only).
// Quantidade é sempre a magnitude do delta aplicado; PrecoUnitario é o preço
// de custo em entradas e o de venda em saídas, capturado no momento do registro.
type Movimentacao struct {
	ID            int64
	ProdutoID     int64
	Tipo          string
	Quantidade    float64
	PrecoUnitario decimal.Decimal
	DataHora      time.Time
}
