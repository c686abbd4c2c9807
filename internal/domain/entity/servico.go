package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Barbeiros fixos da casa.
var Barbeiros = []string{"Barbeiro 1", "Barbeiro 2"}

// TabelaPrecos é a tabela fixa de preços dos serviços oferecidos.
func TabelaPrecos() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"BARBA":               decimal.NewFromInt(30),
		"BIGODE":              decimal.NewFromInt(10),
		"CORTE":               decimal.NewFromInt(40),
		"CABELO E ALISAMENTO": decimal.NewFromInt(80),
		"CABELO E BARBA":      decimal.NewFromInt(60),
		"LUZES":               decimal.NewFromInt(150),
		"PLATINADO":           decimal.NewFromInt(200),
		"SOBRANCELHA":         decimal.NewFromInt(10),
	}
}

// Servico é um registro imutável de serviço prestado (append-only).
// Barbeiro é um rótulo do vocabulário fixo da equipe, sem chave estrangeira.
type Servico struct {
	ID       int64
	Servico  string
	Valor    decimal.Decimal
	Barbeiro string
	DataHora time.Time
}
