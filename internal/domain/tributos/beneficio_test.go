package tributos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/internal/domain/tributos"
)

func calculoParaBeneficio(t *testing.T) *entity.CalculoAdicao {
	t.Helper()
	calc := tributos.NewCalculadora(tabelaTeste(), "GO")
	adicao := adicaoTeste()
	resultado, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	require.NoError(t, err)
	return resultado
}

func TestAplicarBeneficio_Credito(t *testing.T) {
	resultado := calculoParaBeneficio(t)
	aplicado := tributos.AplicarBeneficio(resultado, tributos.Beneficio{
		Tipo:       entity.BeneficioCredito,
		Percentual: dec("67"),
	})

	assert.Equal(t, entity.BeneficioCredito, aplicado.Tipo)
	credito := resultado.ICMS.ValorDevido.Mul(dec("67")).Div(dec("100"))
	assert.True(t, aplicado.Economia.Equal(credito))
	assert.True(t, aplicado.ICMSLiquido.Equal(resultado.ICMS.ValorDevido.Sub(credito)))
	assert.False(t, aplicado.EconomiaDeFluxo)
	// O resultado base permanece intocado.
	assert.True(t, aplicado.ICMSOriginal.Equal(resultado.ICMS.ValorDevido))
}

func TestAplicarBeneficio_Diferimento(t *testing.T) {
	resultado := calculoParaBeneficio(t)
	aplicado := tributos.AplicarBeneficio(resultado, tributos.Beneficio{
		Tipo:       entity.BeneficioDiferimento,
		Percentual: dec("75"),
		Codigo:     "TTD-409",
	})

	assert.Equal(t, entity.BeneficioDiferimento, aplicado.Tipo)
	assert.Equal(t, "TTD-409", aplicado.Codigo)
	diferido := resultado.ICMS.ValorDevido.Mul(dec("75")).Div(dec("100"))
	assert.True(t, aplicado.Economia.Equal(diferido))
	assert.True(t, aplicado.ICMSLiquido.Equal(resultado.ICMS.ValorDevido.Sub(diferido)))
	// Diferimento é economia de fluxo de caixa, não redução permanente.
	assert.True(t, aplicado.EconomiaDeFluxo)
}

func TestAplicarBeneficio_AliquotaEfetiva(t *testing.T) {
	resultado := calculoParaBeneficio(t)
	aplicado := tributos.AplicarBeneficio(resultado, tributos.Beneficio{
		Tipo:            entity.BeneficioAliquotaEfetiva,
		AliquotaEfetiva: dec("9"),
	})

	assert.Equal(t, entity.BeneficioAliquotaEfetiva, aplicado.Tipo)
	efetivo := resultado.ICMS.BaseFinal.Mul(dec("9")).Div(dec("100"))
	assert.True(t, aplicado.ICMSLiquido.Equal(efetivo))
	assert.True(t, aplicado.Economia.Equal(resultado.ICMS.ValorDevido.Sub(efetivo)))
}

func TestAplicarBeneficio_NCMNaoElegivel(t *testing.T) {
	resultado := calculoParaBeneficio(t) // NCM 84713012
	aplicado := tributos.AplicarBeneficio(resultado, tributos.Beneficio{
		Tipo:       entity.BeneficioCredito,
		Percentual: dec("67"),
		NCMs:       []string{"9503", "9504"},
	})

	assert.Equal(t, entity.BeneficioNenhum, aplicado.Tipo)
	assert.True(t, aplicado.ICMSLiquido.Equal(resultado.ICMS.ValorDevido))
	assert.True(t, aplicado.Economia.IsZero())
	assert.NotEmpty(t, aplicado.Motivo)
}

func TestAplicarBeneficio_PrefixoNCMElegivel(t *testing.T) {
	resultado := calculoParaBeneficio(t)
	aplicado := tributos.AplicarBeneficio(resultado, tributos.Beneficio{
		Tipo:       entity.BeneficioCredito,
		Percentual: dec("50"),
		NCMs:       []string{"8471"},
	})
	assert.Equal(t, entity.BeneficioCredito, aplicado.Tipo)
}

func TestAplicarBeneficio_ListaVaziaTodosElegiveis(t *testing.T) {
	resultado := calculoParaBeneficio(t)
	aplicado := tributos.AplicarBeneficio(resultado, tributos.Beneficio{
		Tipo:       entity.BeneficioCredito,
		Percentual: dec("50"),
	})
	assert.Equal(t, entity.BeneficioCredito, aplicado.Tipo)
}
