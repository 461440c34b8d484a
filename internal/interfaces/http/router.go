package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/expertzy/importa-precifica-api/internal/application/calculo"
	"github.com/expertzy/importa-precifica-api/internal/application/precificacao"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CalculoUC      *calculo.UseCase
	PrecificacaoUC *precificacao.UseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rotas protegidas (Bearer Token com perfil conhecido).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequirePerfil("admin", "analista"))

	calculoHandler := NewCalculoHandler(deps.CalculoUC)
	protected.Post("/declaracoes/calcular", calculoHandler.Calcular)
	protected.Get("/calculos", calculoHandler.List)
	protected.Get("/calculos/:id", calculoHandler.GetByID)

	precificacaoHandler := NewPrecificacaoHandler(deps.PrecificacaoUC)
	protected.Post("/calculos/:id/precificacao", precificacaoHandler.Precificar)
}
