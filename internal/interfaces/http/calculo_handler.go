package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/expertzy/importa-precifica-api/internal/application/calculo"
	"github.com/expertzy/importa-precifica-api/internal/application/dto"
	"github.com/expertzy/importa-precifica-api/internal/domain"
)

// CalculoHandler trata as requisições HTTP de cálculo de DI (protegido).
type CalculoHandler struct {
	uc *calculo.UseCase
}

// NewCalculoHandler constrói o handler.
func NewCalculoHandler(uc *calculo.UseCase) *CalculoHandler {
	return &CalculoHandler{uc: uc}
}

// Calcular calcula os tributos e a alocação hierárquica de uma DI.
// POST /api/declaracoes/calcular
func (h *CalculoHandler) Calcular(c *fiber.Ctx) error {
	var in dto.CalcularDeclaracaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resultado, err := h.uc.Calcular(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida), errors.Is(err, domain.ErrDeclaracaoSemAdicoes):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrTributoAusente),
			errors.Is(err, domain.ErrAliquotaInvalida),
			errors.Is(err, domain.ErrRateioIndefinido):
			// Documento estruturalmente válido porém incalculável.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNPROCESSABLE", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATED", Message: "cálculo já registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resultado)
}

// GetByID devolve o detalhe completo de um cálculo persistido.
// GET /api/calculos/:id
func (h *CalculoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id obrigatório"})
	}
	resultado, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cálculo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resultado)
}

// List lista cálculos em formato resumido.
// GET /api/calculos?limit=&offset=
func (h *CalculoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	resumos, err := h.uc.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resumos)
}
