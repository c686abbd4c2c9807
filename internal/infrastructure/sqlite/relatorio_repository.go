package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de leitura dos relatórios sobre SQLite.
// Nenhum método modifica dados.
type RelatorioRepo struct {
	q Querier
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// expandirPeriodo converte limites YYYY-MM-DD no intervalo de dia inteiro
// usado nas comparações de texto do banco.
func expandirPeriodo(inicio, fim string) (string, string) {
	return inicio + " 00:00:00", fim + " 23:59:59"
}

// ResumoServicos agrupa por (servico, barbeiro) e devolve também o total
// geral do período.
func (r *RelatorioRepo) ResumoServicos(inicio, fim string) ([]repository.ResumoServicoResult, decimal.Decimal, error) {
	filtro := ""
	var params []any
	if inicio != "" && fim != "" {
		filtro = ` WHERE datetime(data_hora) BETWEEN datetime(?) AND datetime(?)`
		de, ate := expandirPeriodo(inicio, fim)
		params = append(params, de, ate)
	}

	rows, err := r.q.QueryContext(context.Background(),
		`SELECT servico, barbeiro, COUNT(*) AS quantidade, SUM(valor) AS total
		 FROM servicos`+filtro+`
		 GROUP BY servico, barbeiro
		 ORDER BY servico, barbeiro`, params...)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("resumo servicos: %w", err)
	}
	defer rows.Close()

	var linhas []repository.ResumoServicoResult
	for rows.Next() {
		var l repository.ResumoServicoResult
		var total float64
		if err := rows.Scan(&l.Servico, &l.Barbeiro, &l.Quantidade, &total); err != nil {
			return nil, decimal.Zero, fmt.Errorf("scan resumo servico: %w", err)
		}
		l.Total = decimal.NewFromFloat(total)
		linhas = append(linhas, l)
	}
	if err := rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	var totalGeral float64
	err = r.q.QueryRowContext(context.Background(),
		`SELECT COALESCE(SUM(valor), 0) FROM servicos`+filtro, params...).Scan(&totalGeral)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("total servicos: %w", err)
	}
	return linhas, decimal.NewFromFloat(totalGeral), nil
}

// ResumoCaixa agrega as movimentações por produto. O predicado de data fica
// na cláusula ON para preservar o left join: produto sem movimentação no
// período aparece com agregados zerados.
func (r *RelatorioRepo) ResumoCaixa(inicio, fim string, produtoID int64) ([]repository.ResumoCaixaResult, error) {
	join := ` LEFT JOIN movimentacoes m ON m.produto_id = p.id`
	var params []any
	if inicio != "" && fim != "" {
		join += ` AND datetime(m.data_hora) BETWEEN datetime(?) AND datetime(?)`
		de, ate := expandirPeriodo(inicio, fim)
		params = append(params, de, ate)
	}
	where := ""
	if produtoID > 0 {
		where = ` WHERE p.id = ?`
		params = append(params, produtoID)
	}

	rows, err := r.q.QueryContext(context.Background(),
		`SELECT p.id, p.nome,
		        COALESCE(SUM(CASE WHEN m.tipo = 'ENTRADA' THEN m.quantidade ELSE 0 END), 0) AS qtd_entrada,
		        COALESCE(SUM(CASE WHEN m.tipo = 'SAIDA' THEN m.quantidade ELSE 0 END), 0) AS qtd_saida,
		        COALESCE(SUM(CASE WHEN m.tipo = 'ENTRADA' THEN m.quantidade * m.preco_unitario ELSE 0 END), 0) AS total_compra,
		        COALESCE(SUM(CASE WHEN m.tipo = 'SAIDA' THEN m.quantidade * m.preco_unitario ELSE 0 END), 0) AS total_venda
		 FROM produtos p`+join+where+`
		 GROUP BY p.id, p.nome
		 ORDER BY p.nome`, params...)
	if err != nil {
		return nil, fmt.Errorf("resumo caixa: %w", err)
	}
	defer rows.Close()

	var linhas []repository.ResumoCaixaResult
	for rows.Next() {
		var l repository.ResumoCaixaResult
		var compra, venda float64
		if err := rows.Scan(&l.ProdutoID, &l.Nome, &l.QtdEntrada, &l.QtdSaida, &compra, &venda); err != nil {
			return nil, fmt.Errorf("scan resumo caixa: %w", err)
		}
		l.TotalCompra = decimal.NewFromFloat(compra)
		l.TotalVenda = decimal.NewFromFloat(venda)
		linhas = append(linhas, l)
	}
	return linhas, rows.Err()
}
