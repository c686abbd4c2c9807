package estoque

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/domain"
)

// Validação numérica estrita dos campos digitados nos formulários,
// centralizada aqui para que todos os pontos de entrada apliquem a mesma
// gramática: dígitos, no máximo um ponto decimal e, apenas no delta, um
// sinal negativo inicial. Mais estrita que strconv.ParseFloat, que aceita
// "1e3", "+1", "inf" etc.

func varreNumero(texto string, permiteNegativo bool) error {
	if texto == "" {
		return fmt.Errorf("%w: valor vazio", domain.ErrValidacao)
	}
	pontos := 0
	for i, c := range texto {
		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			pontos++
			if pontos > 1 {
				return fmt.Errorf("%w: mais de um ponto decimal em %q", domain.ErrValidacao, texto)
			}
		case c == '-' && permiteNegativo && i == 0:
		default:
			return fmt.Errorf("%w: caractere %q em %q", domain.ErrValidacao, string(c), texto)
		}
	}
	return nil
}

// ParseQuantidade valida a quantidade do cadastro: dígitos e no máximo um
// ponto decimal, valor não negativo.
func ParseQuantidade(texto string) (float64, error) {
	texto = strings.TrimSpace(texto)
	if err := varreNumero(texto, false); err != nil {
		return 0, err
	}
	q, err := strconv.ParseFloat(texto, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantidade %q", domain.ErrValidacao, texto)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: quantidade negativa", domain.ErrValidacao)
	}
	return q, nil
}

// ParseMinimo valida o estoque mínimo: apenas dígitos, inteiro não negativo.
func ParseMinimo(texto string) (int, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return 0, fmt.Errorf("%w: valor vazio", domain.ErrValidacao)
	}
	for _, c := range texto {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: estoque mínimo deve conter apenas números inteiros", domain.ErrValidacao)
		}
	}
	m, err := strconv.Atoi(texto)
	if err != nil {
		return 0, fmt.Errorf("%w: estoque mínimo %q", domain.ErrValidacao, texto)
	}
	if m < 0 {
		return 0, fmt.Errorf("%w: estoque mínimo negativo", domain.ErrValidacao)
	}
	return m, nil
}

// ParseDelta valida o delta de ajuste: sinal negativo inicial opcional,
// dígitos e no máximo um ponto decimal.
func ParseDelta(texto string) (float64, error) {
	texto = strings.TrimSpace(texto)
	if err := varreNumero(texto, true); err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(texto, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: delta %q", domain.ErrValidacao, texto)
	}
	return d, nil
}

// ParsePreco valida um preço: decimal estrito, não negativo.
// O cadastro rejeita quantidades negativas; por consistência os preços
// também não aceitam valores negativos.
func ParsePreco(texto string) (decimal.Decimal, error) {
	texto = strings.TrimSpace(texto)
	if err := varreNumero(texto, false); err != nil {
		return decimal.Zero, err
	}
	p, err := decimal.NewFromString(texto)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: preço %q", domain.ErrValidacao, texto)
	}
	if p.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: preço negativo", domain.ErrValidacao)
	}
	return p, nil
}
