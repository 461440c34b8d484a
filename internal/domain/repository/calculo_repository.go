package repository

import (
	"context"

	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// CalculoRepository persistência de cálculos concluídos.
type CalculoRepository interface {
	Create(ctx context.Context, registro *entity.CalculoRegistro) error
	GetByID(ctx context.Context, id string) (*entity.CalculoRegistro, error)
	List(ctx context.Context, limit, offset int) ([]*entity.CalculoRegistro, error)
}
