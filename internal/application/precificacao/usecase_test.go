package precificacao_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expertzy/importa-precifica-api/internal/application/dto"
	"github.com/expertzy/importa-precifica-api/internal/application/precificacao"
	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/pkg/logger"
)

type repoFake struct {
	registro *entity.CalculoRegistro
}

func (r *repoFake) Create(_ context.Context, registro *entity.CalculoRegistro) error {
	r.registro = registro
	return nil
}

func (r *repoFake) GetByID(_ context.Context, id string) (*entity.CalculoRegistro, error) {
	if r.registro == nil || r.registro.ID != id {
		return nil, domain.ErrNaoEncontrado
	}
	return r.registro, nil
}

func (r *repoFake) List(_ context.Context, _, _ int) ([]*entity.CalculoRegistro, error) {
	if r.registro == nil {
		return nil, nil
	}
	return []*entity.CalculoRegistro{r.registro}, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// registroTeste cálculo persistido com dois itens de custos redondos, para
// conferência manual dos preços.
func registroTeste() *entity.CalculoRegistro {
	resultado := &entity.CalculoDeclaracao{
		NumeroDI:      "24/1234567-8",
		UFDestino:     "SP",
		NumeroAdicoes: 1,
		CustoTotal:    dec("1500.00"),
		Adicoes: []entity.CalculoAdicao{
			{
				AdicaoNumero: "001",
				NCM:          "84713012",
				Itens: []entity.CalculoItem{
					{
						AdicaoNumero: "001",
						Indice:       1,
						Descricao:    "notebook 14\"",
						Quantidade:   dec("2"),
						CustoTotal:   dec("1000.00"),
					},
					{
						AdicaoNumero: "001",
						Indice:       2,
						Descricao:    "dock station",
						Quantidade:   dec("4"),
						CustoTotal:   dec("500.00"),
					},
				},
			},
		},
	}
	return &entity.CalculoRegistro{
		ID:         "calc-1",
		NumeroDI:   resultado.NumeroDI,
		UFDestino:  resultado.UFDestino,
		CustoTotal: resultado.CustoTotal,
		Resultado:  resultado,
		CreatedAt:  time.Now().UTC(),
	}
}

func usecaseTeste() *precificacao.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	return precificacao.NewUseCase(&repoFake{registro: registroTeste()}, log)
}

func TestPrecificar_MargensInformadas(t *testing.T) {
	uc := usecaseTeste()

	resp, err := uc.Precificar(context.Background(), "calc-1", dto.PrecificarRequest{
		MargemMinima:   dec("20"),
		MargemSugerida: dec("50"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Adicoes, 1)
	require.Len(t, resp.Adicoes[0].Itens, 2)

	// Item 1: custo 1000 / 2 unidades = 500; +20% = 600; +50% = 750.
	item := resp.Adicoes[0].Itens[0]
	assert.True(t, item.CustoUnitario.Equal(dec("500")), "custo unitário %s", item.CustoUnitario)
	assert.True(t, item.PrecoVendaMinimo.Equal(dec("600")), "preço mínimo %s", item.PrecoVendaMinimo)
	assert.True(t, item.PrecoVendaSugerido.Equal(dec("750")), "preço sugerido %s", item.PrecoVendaSugerido)

	// Item 2: custo 500 / 4 unidades = 125; +20% = 150; +50% = 187,50.
	item = resp.Adicoes[0].Itens[1]
	assert.True(t, item.CustoUnitario.Equal(dec("125")))
	assert.True(t, item.PrecoVendaMinimo.Equal(dec("150")))
	assert.True(t, item.PrecoVendaSugerido.Equal(dec("187.50")))
}

func TestPrecificar_MargensPadrao(t *testing.T) {
	uc := usecaseTeste()

	resp, err := uc.Precificar(context.Background(), "calc-1", dto.PrecificarRequest{})
	require.NoError(t, err)
	assert.True(t, resp.MargemMinima.Equal(dec("15")))
	assert.True(t, resp.MargemSugerida.Equal(dec("30")))

	// 500 × 1,15 = 575; 500 × 1,30 = 650.
	item := resp.Adicoes[0].Itens[0]
	assert.True(t, item.PrecoVendaMinimo.Equal(dec("575")))
	assert.True(t, item.PrecoVendaSugerido.Equal(dec("650")))
}

func TestPrecificar_QuantidadeZeroUsaCustoTotal(t *testing.T) {
	registro := registroTeste()
	registro.Resultado.Adicoes[0].Itens[0].Quantidade = decimal.Zero
	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	uc := precificacao.NewUseCase(&repoFake{registro: registro}, log)

	resp, err := uc.Precificar(context.Background(), "calc-1", dto.PrecificarRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Adicoes[0].Itens[0].CustoUnitario.Equal(dec("1000.00")))
}

func TestPrecificar_CalculoInexistente(t *testing.T) {
	uc := usecaseTeste()

	_, err := uc.Precificar(context.Background(), "nao-existe", dto.PrecificarRequest{})
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
