package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/internal/domain/repository"
)

// Querier abstrai pool ou tx do pgx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.CalculoRepository = (*CalculoRepo)(nil)

// CalculoRepo implementação de CalculoRepository. Colunas de cabeçalho para
// listagem e consulta; o resultado consolidado completo vai em JSONB.
type CalculoRepo struct {
	q Querier
}

// NewCalculoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCalculoRepository(q Querier) *CalculoRepo {
	return &CalculoRepo{q: q}
}

// Create insere o registro de cálculo.
func (r *CalculoRepo) Create(ctx context.Context, registro *entity.CalculoRegistro) error {
	payload, err := json.Marshal(registro.Resultado)
	if err != nil {
		return fmt.Errorf("serializar resultado: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO calculos (id, numero_di, uf_destino, total_impostos, custo_total, resultado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		registro.ID, registro.NumeroDI, registro.UFDestino,
		registro.TotalImpostos, registro.CustoTotal, payload, registro.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("inserir cálculo: %w", err)
	}
	return nil
}

// GetByID busca um cálculo pelo ID, com o resultado consolidado completo.
func (r *CalculoRepo) GetByID(ctx context.Context, id string) (*entity.CalculoRegistro, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, numero_di, uf_destino, total_impostos, custo_total, resultado, created_at
		FROM calculos WHERE id = $1`, id)

	registro, err := scanCalculo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("buscar cálculo: %w", err)
	}
	return registro, nil
}

// List lista cálculos do mais recente para o mais antigo.
func (r *CalculoRepo) List(ctx context.Context, limit, offset int) ([]*entity.CalculoRegistro, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, numero_di, uf_destino, total_impostos, custo_total, resultado, created_at
		FROM calculos ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar cálculos: %w", err)
	}
	defer rows.Close()

	var registros []*entity.CalculoRegistro
	for rows.Next() {
		registro, err := scanCalculo(rows)
		if err != nil {
			return nil, fmt.Errorf("listar cálculos: %w", err)
		}
		registros = append(registros, registro)
	}
	return registros, rows.Err()
}

func scanCalculo(row pgx.Row) (*entity.CalculoRegistro, error) {
	var registro entity.CalculoRegistro
	var payload []byte
	if err := row.Scan(
		&registro.ID, &registro.NumeroDI, &registro.UFDestino,
		&registro.TotalImpostos, &registro.CustoTotal, &payload, &registro.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		var resultado entity.CalculoDeclaracao
		if err := json.Unmarshal(payload, &resultado); err != nil {
			return nil, fmt.Errorf("desserializar resultado: %w", err)
		}
		registro.Resultado = &resultado
	}
	return &registro, nil
}
