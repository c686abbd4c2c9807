package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/caiomf/barbearia-api/internal/application/estoque"
	"github.com/caiomf/barbearia-api/internal/application/relatorio"
	"github.com/caiomf/barbearia-api/internal/application/servicos"
	infrapdf "github.com/caiomf/barbearia-api/internal/infrastructure/pdf"
	"github.com/caiomf/barbearia-api/internal/infrastructure/sqlite"
	httpRouter "github.com/caiomf/barbearia-api/internal/interfaces/http"
	"github.com/caiomf/barbearia-api/pkg/config"
	"github.com/caiomf/barbearia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicação")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir banco local")
	}
	defer db.Close()

	produtoRepo := sqlite.NewProdutoRepository(db)
	movRepo := sqlite.NewMovimentacaoRepository(db)
	servicoRepo := sqlite.NewServicoRepository(db)
	relatorioRepo := sqlite.NewRelatorioRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	estoqueUC := estoque.NewUseCase(txRunner, produtoRepo, movRepo, log)
	servicosUC := servicos.NewUseCase(servicoRepo, log)
	relatorioUC := relatorio.NewUseCase(relatorioRepo)
	pdfGenerator := infrapdf.NewFechamentoPDFGenerator(cfg.App.BrandPath)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Barbearia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EstoqueUC:   estoqueUC,
		ServicosUC:  servicosUC,
		RelatorioUC: relatorioUC,
		PDF:         pdfGenerator,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
