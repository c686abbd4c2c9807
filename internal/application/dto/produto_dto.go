package dto

import "github.com/shopspring/decimal"

// CadastrarProdutoRequest body para POST /api/produtos.
// Quantidade e Minimo chegam como texto digitado no formulário e passam pela
// validação numérica estrita antes de qualquer escrita.
type CadastrarProdutoRequest struct {
	Nome       string `json:"nome"`
	Categoria  string `json:"categoria"`
	Quantidade string `json:"quantidade"`
	Minimo     string `json:"minimo"`
}

// AtualizarPrecosRequest body para PUT /api/produtos/{id}/precos.
type AtualizarPrecosRequest struct {
	PrecoCusto string `json:"preco_custo"`
	PrecoVenda string `json:"preco_venda"`
}

// ProdutoResponse representação de um produto nas respostas.
type ProdutoResponse struct {
	ID           int64           `json:"id"`
	Nome         string          `json:"nome"`
	Categoria    string          `json:"categoria"`
	Quantidade   float64         `json:"quantidade"`
	Minimo       int             `json:"minimo"`
	PrecoCusto   decimal.Decimal `json:"preco_custo"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	AbaixoMinimo bool            `json:"abaixo_minimo"`
}

// ProdutoListResponse resposta de listagem/busca.
type ProdutoListResponse struct {
	Produtos []ProdutoResponse `json:"produtos"`
	Total    int               `json:"total"`
}
