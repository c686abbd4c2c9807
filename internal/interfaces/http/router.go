package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caiomf/barbearia-api/internal/application/estoque"
	"github.com/caiomf/barbearia-api/internal/application/relatorio"
	"github.com/caiomf/barbearia-api/internal/application/servicos"
	"github.com/caiomf/barbearia-api/internal/infrastructure/pdf"
	"github.com/caiomf/barbearia-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EstoqueUC   *estoque.UseCase
	ServicosUC  *servicos.UseCase
	RelatorioUC *relatorio.UseCase
	PDF         *pdf.FechamentoPDFGenerator
	Log         *logger.Logger
}

// Router registra as rotas da API local.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))

	api := app.Group("/api")

	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.EstoqueUC)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/busca", produtoHandler.Buscar)
	produtos.Post("/", produtoHandler.Cadastrar)
	produtos.Put("/:id/precos", produtoHandler.AtualizarPrecos)
	produtos.Post("/:id/movimentacoes", produtoHandler.AjustarEstoque)
	produtos.Get("/:id/movimentacoes", produtoHandler.Historico)
	produtos.Delete("/:id", produtoHandler.Excluir)

	servGroup := api.Group("/servicos")
	servicoHandler := NewServicoHandler(deps.ServicosUC)
	servGroup.Get("/tabela", servicoHandler.Tabela)
	servGroup.Post("/", servicoHandler.Registrar)

	relatorios := api.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC, deps.PDF)
	relatorios.Get("/servicos", relatorioHandler.Servicos)
	relatorios.Get("/caixa", relatorioHandler.Caixa)
	relatorios.Get("/fechamento", relatorioHandler.Fechamento)
	relatorios.Get("/fechamento/pdf", relatorioHandler.FechamentoPDF)
}
