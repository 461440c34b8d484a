package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/expertzy/importa-precifica-api/internal/application/dto"
	"github.com/expertzy/importa-precifica-api/internal/application/precificacao"
	"github.com/expertzy/importa-precifica-api/internal/domain"
)

// PrecificacaoHandler trata as requisições HTTP de precificação (protegido).
type PrecificacaoHandler struct {
	uc *precificacao.UseCase
}

// NewPrecificacaoHandler constrói o handler.
func NewPrecificacaoHandler(uc *precificacao.UseCase) *PrecificacaoHandler {
	return &PrecificacaoHandler{uc: uc}
}

// Precificar aplica margens sobre os custos de um cálculo persistido.
// POST /api/calculos/:id/precificacao
func (h *PrecificacaoHandler) Precificar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id obrigatório"})
	}
	// Corpo vazio é válido: aplicam-se as margens padrão.
	var in dto.PrecificarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}
	}
	resultado, err := h.uc.Precificar(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cálculo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resultado)
}
