package estoque

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/domain"
	"github.com/caiomf/barbearia-api/internal/domain/entity"
	"github.com/caiomf/barbearia-api/internal/domain/repository"
	"github.com/caiomf/barbearia-api/pkg/logger"
)

// UseCase concentra as operações de estoque: cadastro, ajuste com registro
// de movimentação, atualização de preços, exclusão em cascata e listagem.
// Mantém o snapshot da última listagem para a busca incremental do shell;
// o snapshot é recarregado após toda mutação e nunca alimenta relatórios.
type UseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
	log         *logger.Logger

	mu    sync.RWMutex
	cache []*entity.Produto
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
		log:         log,
	}
}

// CadastrarProduto valida o formulário e insere o produto com preços zerados.
func (uc *UseCase) CadastrarProduto(ctx context.Context, in dto.CadastrarProdutoRequest) (*dto.ProdutoResponse, error) {
	nome := strings.TrimSpace(in.Nome)
	categoria := strings.TrimSpace(in.Categoria)
	if nome == "" || categoria == "" {
		return nil, fmt.Errorf("%w: nome e categoria não podem estar vazios", domain.ErrValidacao)
	}
	quantidade, err := ParseQuantidade(in.Quantidade)
	if err != nil {
		return nil, err
	}
	minimo, err := ParseMinimo(in.Minimo)
	if err != nil {
		return nil, err
	}

	produto := &entity.Produto{
		Nome:       nome,
		Categoria:  categoria,
		Quantidade: quantidade,
		Minimo:     minimo,
	}
	if err := uc.produtoRepo.Criar(produto); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("produto_id", produto.ID).Str("nome", nome).Msg("produto cadastrado")
	uc.recarregarCache()

	out := produtoParaDTO(produto)
	return &out, nil
}

// AjustarEstoque aplica o delta à quantidade atual. Se tipo for informado,
// registra a movimentação com o preço capturado no momento (custo em
// ENTRADA, venda em SAIDA) e quantidade igual à magnitude do delta.
// O alerta de estoque baixo dispara sempre que a nova quantidade fica
// abaixo do mínimo, independente de haver movimentação registrada.
func (uc *UseCase) AjustarEstoque(ctx context.Context, produtoID int64, in dto.AjustarEstoqueRequest) (*dto.AjusteEstoqueResponse, error) {
	delta, err := ParseDelta(in.Delta)
	if err != nil {
		return nil, err
	}

	produto, err := uc.produtoRepo.BuscarPorID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}

	novaQuantidade := produto.Quantidade + delta
	if novaQuantidade < 0 {
		return nil, domain.ErrEstoqueInsuficiente
	}
	if err := uc.produtoRepo.AtualizarQuantidade(produtoID, novaQuantidade); err != nil {
		return nil, err
	}

	resp := &dto.AjusteEstoqueResponse{NovaQuantidade: novaQuantidade}

	if novaQuantidade < float64(produto.Minimo) {
		resp.Alerta = &dto.AlertaEstoqueBaixo{
			Produto:    produto.Nome,
			Quantidade: novaQuantidade,
			Minimo:     produto.Minimo,
		}
		uc.log.Warn().
			Str("produto", produto.Nome).
			Float64("quantidade", novaQuantidade).
			Int("minimo", produto.Minimo).
			Msg("estoque abaixo do mínimo")
	}

	if in.Tipo != "" {
		tipo := entity.NormalizarTipoMovimentacao(in.Tipo)
		precoUnitario := produto.PrecoVenda
		if tipo == entity.MovimentacaoEntrada {
			precoUnitario = produto.PrecoCusto
		}
		mov := &entity.Movimentacao{
			ProdutoID:     produtoID,
			Tipo:          tipo,
			Quantidade:    math.Abs(delta),
			PrecoUnitario: precoUnitario,
			DataHora:      time.Now(),
		}
		if err := uc.movRepo.Criar(mov); err != nil {
			return nil, err
		}
		resp.Movimentacao = movimentacaoParaDTO(mov)
	}

	uc.recarregarCache()
	return resp, nil
}

// AtualizarPrecos sobrescreve os dois preços do produto.
func (uc *UseCase) AtualizarPrecos(ctx context.Context, produtoID int64, in dto.AtualizarPrecosRequest) (*dto.ProdutoResponse, error) {
	custo, err := ParsePreco(in.PrecoCusto)
	if err != nil {
		return nil, err
	}
	venda, err := ParsePreco(in.PrecoVenda)
	if err != nil {
		return nil, err
	}

	produto, err := uc.produtoRepo.BuscarPorID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if err := uc.produtoRepo.AtualizarPrecos(produtoID, custo, venda); err != nil {
		return nil, err
	}
	uc.recarregarCache()

	produto.PrecoCusto = custo
	produto.PrecoVenda = venda
	out := produtoParaDTO(produto)
	return &out, nil
}

// ExcluirProduto remove o produto e todo o seu histórico de movimentações
// na mesma transação; nunca aplica parcialmente.
func (uc *UseCase) ExcluirProduto(ctx context.Context, produtoID int64) error {
	produto, err := uc.produtoRepo.BuscarPorID(produtoID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNaoEncontrado
	}

	err = uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		if err := movRepo.ExcluirPorProduto(produtoID); err != nil {
			return err
		}
		return produtoRepo.Excluir(produtoID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Int64("produto_id", produtoID).Str("nome", produto.Nome).Msg("produto excluído")
	uc.recarregarCache()
	return nil
}

// ListarProdutos consulta todos os produtos (categoria, nome) e renova o
// snapshot usado pela busca.
func (uc *UseCase) ListarProdutos(ctx context.Context) (*dto.ProdutoListResponse, error) {
	produtos, err := uc.produtoRepo.Listar()
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.cache = produtos
	uc.mu.Unlock()
	return listaParaDTO(produtos), nil
}

// FiltrarProdutos filtra o snapshot da última listagem por substring do nome,
// sem ir ao banco (busca por tecla digitada). Termo vazio devolve tudo.
func (uc *UseCase) FiltrarProdutos(ctx context.Context, termo string) (*dto.ProdutoListResponse, error) {
	uc.mu.RLock()
	snapshot := uc.cache
	uc.mu.RUnlock()
	if snapshot == nil {
		// Cache frio: carrega uma vez.
		if _, err := uc.ListarProdutos(ctx); err != nil {
			return nil, err
		}
		uc.mu.RLock()
		snapshot = uc.cache
		uc.mu.RUnlock()
	}

	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return listaParaDTO(snapshot), nil
	}
	var filtrados []*entity.Produto
	for _, p := range snapshot {
		if strings.Contains(strings.ToLower(p.Nome), termo) {
			filtrados = append(filtrados, p)
		}
	}
	return listaParaDTO(filtrados), nil
}

// HistoricoMovimentacoes devolve o log de movimentações de um produto.
func (uc *UseCase) HistoricoMovimentacoes(ctx context.Context, produtoID int64) (*dto.MovimentacaoListResponse, error) {
	produto, err := uc.produtoRepo.BuscarPorID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	movs, err := uc.movRepo.ListarPorProduto(produtoID)
	if err != nil {
		return nil, err
	}
	out := &dto.MovimentacaoListResponse{Movimentacoes: []dto.MovimentacaoResponse{}}
	for _, m := range movs {
		out.Movimentacoes = append(out.Movimentacoes, *movimentacaoParaDTO(m))
	}
	out.Total = len(out.Movimentacoes)
	return out, nil
}

// recarregarCache renova o snapshot após uma mutação. Falha de leitura aqui
// não invalida a mutação já aplicada; apenas zera o cache para a próxima
// busca recarregar.
func (uc *UseCase) recarregarCache() {
	produtos, err := uc.produtoRepo.Listar()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err != nil {
		uc.cache = nil
		return
	}
	uc.cache = produtos
}

func produtoParaDTO(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Categoria:    p.Categoria,
		Quantidade:   p.Quantidade,
		Minimo:       p.Minimo,
		PrecoCusto:   p.PrecoCusto,
		PrecoVenda:   p.PrecoVenda,
		AbaixoMinimo: p.AbaixoMinimo(),
	}
}

func movimentacaoParaDTO(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:            m.ID,
		ProdutoID:     m.ProdutoID,
		Tipo:          m.Tipo,
		Quantidade:    m.Quantidade,
		PrecoUnitario: m.PrecoUnitario,
		DataHora:      m.DataHora.Format(entity.LayoutDataHora),
	}
}

func listaParaDTO(produtos []*entity.Produto) *dto.ProdutoListResponse {
	out := &dto.ProdutoListResponse{Produtos: []dto.ProdutoResponse{}}
	for _, p := range produtos {
		out.Produtos = append(out.Produtos, produtoParaDTO(p))
	}
	out.Total = len(out.Produtos)
	return out
}
