package dto

import "github.com/shopspring/decimal"

// AjustarEstoqueRequest body para POST /api/produtos/{id}/movimentacoes.
// Delta é o texto digitado (sinal negativo opcional); Tipo vazio aplica o
// delta sem registrar movimentação no log.
type AjustarEstoqueRequest struct {
	Delta string `json:"delta"`
	Tipo  string `json:"tipo,omitempty"`
}

// AlertaEstoqueBaixo aviso informativo emitido quando a nova quantidade fica
// abaixo do mínimo configurado. Não é um erro: a mutação já foi aplicada.
type AlertaEstoqueBaixo struct {
	Produto    string  `json:"produto"`
	Quantidade float64 `json:"quantidade"`
	Minimo     int     `json:"minimo"`
}

// MovimentacaoResponse representação de uma movimentação registrada.
type MovimentacaoResponse struct {
	ID            int64           `json:"id"`
	ProdutoID     int64           `json:"produto_id"`
	Tipo          string          `json:"tipo"`
	Quantidade    float64         `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	DataHora      string          `json:"data_hora"`
}

// AjusteEstoqueResponse resultado de um ajuste de estoque.
type AjusteEstoqueResponse struct {
	NovaQuantidade float64               `json:"nova_quantidade"`
	Movimentacao   *MovimentacaoResponse `json:"movimentacao,omitempty"`
	Alerta         *AlertaEstoqueBaixo   `json:"alerta,omitempty"`
}

// MovimentacaoListResponse histórico de movimentações de um produto.
type MovimentacaoListResponse struct {
	Movimentacoes []MovimentacaoResponse `json:"movimentacoes"`
	Total         int                    `json:"total"`
}
