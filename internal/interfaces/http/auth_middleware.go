package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/expertzy/importa-precifica-api/internal/application/dto"
	"github.com/expertzy/importa-precifica-api/pkg/jwt"
)

// Chaves de Locals para UserID e Perfil no Fiber.
const (
	LocalUserID = "user_id"
	LocalPerfil = "perfil"
)

// AuthMiddleware valida o Bearer Token JWT e grava UserID e Perfil em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, perfil, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalPerfil, perfil)
		return c.Next()
	}
}

// RequirePerfil devolve um middleware que exige um dos perfis indicados.
// Deve ser usado DEPOIS do AuthMiddleware (depende de LocalPerfil).
func RequirePerfil(perfis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perfil := GetPerfil(c)
		if perfil == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_PERFIL", Message: "token sem perfil"})
		}
		for _, p := range perfis {
			if perfil == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "perfil sem acesso a este recurso"})
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPerfil devolve o Perfil do contexto (após o middleware de auth).
func GetPerfil(c *fiber.Ctx) string {
	v := c.Locals(LocalPerfil)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
