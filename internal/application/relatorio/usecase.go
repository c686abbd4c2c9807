package relatorio

import (
	"context"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
)

// UseCase gera os relatórios do período: resumo de serviços, resumo de caixa
// por produto e o fechamento combinado. Só leitura; chamadas repetidas com os
// mesmos argumentos e banco inalterado devolvem o mesmo resultado.
type UseCase struct {
	relRepo repository.RelatorioRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(relRepo repository.RelatorioRepository) *UseCase {
	return &UseCase{relRepo: relRepo}
}

// ResumoServicos agrupa os serviços do período por (servico, barbeiro),
// com contagem e soma de valores por grupo e o total geral.
func (uc *UseCase) ResumoServicos(ctx context.Context, inicio, fim string) (*dto.ResumoServicosDTO, error) {
	if err := validarPeriodo(inicio, fim); err != nil {
		return nil, err
	}
	linhas, total, err := uc.relRepo.ResumoServicos(inicio, fim)
	if err != nil {
		return nil, err
	}
	out := &dto.ResumoServicosDTO{
		Periodo:       dto.PeriodoDTO{Inicio: inicio, Fim: fim},
		Grupos:        []dto.GrupoServicoDTO{},
		TotalServicos: total,
	}
	for _, l := range linhas {
		out.Grupos = append(out.Grupos, dto.GrupoServicoDTO{
			Servico:    l.Servico,
			Barbeiro:   l.Barbeiro,
			Quantidade: l.Quantidade,
			Total:      l.Total,
		})
	}
	return out, nil
}

// ResumoCaixa agrega as movimentações por produto no período. O lucro por
// produto é venda - compra; os totais somam as linhas devolvidas.
func (uc *UseCase) ResumoCaixa(ctx context.Context, inicio, fim string, produtoID int64) (*dto.ResumoCaixaDTO, error) {
	if err := validarPeriodo(inicio, fim); err != nil {
		return nil, err
	}
	linhas, err := uc.relRepo.ResumoCaixa(inicio, fim, produtoID)
	if err != nil {
		return nil, err
	}
	out := &dto.ResumoCaixaDTO{
		Periodo:  dto.PeriodoDTO{Inicio: inicio, Fim: fim},
		Produtos: []dto.CaixaProdutoDTO{},
	}
	for _, l := range linhas {
		lucro := l.TotalVenda.Sub(l.TotalCompra)
		out.Produtos = append(out.Produtos, dto.CaixaProdutoDTO{
			ProdutoID:   l.ProdutoID,
			Nome:        l.Nome,
			QtdEntrada:  l.QtdEntrada,
			QtdSaida:    l.QtdSaida,
			TotalCompra: l.TotalCompra,
			TotalVenda:  l.TotalVenda,
			Lucro:       lucro,
		})
		out.TotalCompras = out.TotalCompras.Add(l.TotalCompra)
		out.TotalVendas = out.TotalVendas.Add(l.TotalVenda)
		out.LucroTotal = out.LucroTotal.Add(lucro)
	}
	return out, nil
}

// Fechamento combina o resumo de caixa e o de serviços do período.
// TotalGeral = TotalServicos + LucroProdutos.
func (uc *UseCase) Fechamento(ctx context.Context, inicio, fim string) (*dto.FechamentoDTO, error) {
	caixa, err := uc.ResumoCaixa(ctx, inicio, fim, 0)
	if err != nil {
		return nil, err
	}
	servicos, err := uc.ResumoServicos(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	return &dto.FechamentoDTO{
		Periodo:       dto.PeriodoDTO{Inicio: inicio, Fim: fim},
		Produtos:      caixa.Produtos,
		Servicos:      servicos.Grupos,
		TotalCompras:  caixa.TotalCompras,
		TotalVendas:   caixa.TotalVendas,
		LucroProdutos: caixa.LucroTotal,
		TotalServicos: servicos.TotalServicos,
		TotalGeral:    servicos.TotalServicos.Add(caixa.LucroTotal),
	}, nil
}
