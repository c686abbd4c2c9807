package relatorio

import (
	"fmt"
	"time"

	"github.com/caiomf/barbearia-api/internal/domain"
)

// Presets de período dos filtros rápidos do fechamento de caixa.
const (
	PeriodoHoje        = "hoje"
	PeriodoOntem       = "ontem"
	PeriodoMesAtual    = "mes_atual"
	PeriodoMesAnterior = "mes_anterior"
	PeriodoUltimos30   = "ultimos_30_dias"
)

const layoutData = "2006-01-02"

// ResolverPeriodo converte um preset em limites concretos YYYY-MM-DD,
// relativos à data de referência (normalmente hoje).
func ResolverPeriodo(preset string, ref time.Time) (inicio, fim string, err error) {
	switch preset {
	case PeriodoHoje:
		d := ref.Format(layoutData)
		return d, d, nil
	case PeriodoOntem:
		d := ref.AddDate(0, 0, -1).Format(layoutData)
		return d, d, nil
	case PeriodoMesAtual:
		primeiro := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return primeiro.Format(layoutData), ref.Format(layoutData), nil
	case PeriodoMesAnterior:
		primeiroDoMes := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		ultimoAnterior := primeiroDoMes.AddDate(0, 0, -1)
		primeiroAnterior := time.Date(ultimoAnterior.Year(), ultimoAnterior.Month(), 1, 0, 0, 0, 0, ref.Location())
		return primeiroAnterior.Format(layoutData), ultimoAnterior.Format(layoutData), nil
	case PeriodoUltimos30:
		return ref.AddDate(0, 0, -30).Format(layoutData), ref.Format(layoutData), nil
	}
	return "", "", fmt.Errorf("%w: período %q desconhecido", domain.ErrValidacao, preset)
}

// validarPeriodo aceita os dois limites vazios (sem filtro) ou os dois
// preenchidos em YYYY-MM-DD.
func validarPeriodo(inicio, fim string) error {
	if inicio == "" && fim == "" {
		return nil
	}
	if inicio == "" || fim == "" {
		return fmt.Errorf("%w: informe as duas datas do período", domain.ErrValidacao)
	}
	if _, err := time.Parse(layoutData, inicio); err != nil {
		return fmt.Errorf("%w: data inicial %q (use AAAA-MM-DD)", domain.ErrValidacao, inicio)
	}
	if _, err := time.Parse(layoutData, fim); err != nil {
		return fmt.Errorf("%w: data final %q (use AAAA-MM-DD)", domain.ErrValidacao, fim)
	}
	return nil
}
