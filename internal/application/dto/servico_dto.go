package dto

import "github.com/shopspring/decimal"

// RegistrarServicoRequest body para POST /api/servicos.
// Valor chega como texto do formulário.
type RegistrarServicoRequest struct {
	Servico  string `json:"servico"`
	Valor    string `json:"valor"`
	Barbeiro string `json:"barbeiro"`
}

// ServicoResponse representação de um serviço registrado.
type ServicoResponse struct {
	ID       int64           `json:"id"`
	Servico  string          `json:"servico"`
	Valor    decimal.Decimal `json:"valor"`
	Barbeiro string          `json:"barbeiro"`
	DataHora string          `json:"data_hora"`
}

// TabelaPrecosResponse tabela fixa de preços e equipe, para os formulários do shell.
type TabelaPrecosResponse struct {
	Servicos  map[string]decimal.Decimal `json:"servicos"`
	Barbeiros []string                   `json:"barbeiros"`
}
