package entity

import "github.com/shopspring/decimal"

// Categorias padrão oferecidas no cadastro. A lista é sugestiva: qualquer
// categoria não vazia é aceita.
var CategoriasPadrao = []string{
	"Pomada",
	"Shampoo",
	"Óleo",
	"Lâmina",
	"Acessório",
	"Outros",
}

// Produto representa um item do estoque da barbearia.
// Quantidade só muda via movimentação de estoque; preços só via atualização
// dedicada de preços (ambos iniciam em 0 no cadastro).
type Produto struct {
	ID         int64
	Nome       string
	Categoria  string
	Quantidade float64
	Minimo     int
	PrecoCusto decimal.Decimal
	PrecoVenda decimal.Decimal
}

// AbaixoMinimo indica estoque abaixo do mínimo configurado.
// Derivado na leitura, nunca persistido.
func (p *Produto) AbaixoMinimo() bool {
	return p.Quantidade < float64(p.Minimo)
}
