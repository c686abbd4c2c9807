package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrValidacao           = errors.New("entrada inválida")
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrEstoqueInsuficiente = errors.New("a quantidade em estoque não pode ficar negativa")
)
