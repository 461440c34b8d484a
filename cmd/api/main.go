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
	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/application/calculo"
	"github.com/expertzy/importa-precifica-api/internal/application/precificacao"
	"github.com/expertzy/importa-precifica-api/internal/infrastructure/fiscal"
	"github.com/expertzy/importa-precifica-api/internal/infrastructure/postgres"
	httpRouter "github.com/expertzy/importa-precifica-api/internal/interfaces/http"
	"github.com/expertzy/importa-precifica-api/pkg/config"
	"github.com/expertzy/importa-precifica-api/pkg/logger"
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
		Msg("iniciando aplicação")

	tabela, err := fiscal.Carregar(cfg.Fiscal.AliquotasPath, cfg.Fiscal.BeneficiosPath)
	if err != nil {
		log.Fatal().Err(err).Msg("carregar tabela fiscal")
	}

	tolerancia, err := decimal.NewFromString(cfg.Fiscal.Tolerancia)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.Fiscal.Tolerancia).Msg("tolerância de reconciliação inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	calculoRepo := postgres.NewCalculoRepository(pool)
	calculoUC := calculo.NewUseCase(tabela, calculoRepo, log, calculo.Opcoes{
		UFPadrao:   cfg.Fiscal.UFPadrao,
		Tolerancia: tolerancia,
	})
	precificacaoUC := precificacao.NewUseCase(calculoRepo, log)

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
		Title:    "Importa Precifica API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CalculoUC:      calculoUC,
		PrecificacaoUC: precificacaoUC,
		JWTSecret:      cfg.JWT.Secret,
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
