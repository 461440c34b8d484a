package tributos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/internal/domain/tributos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vetor de referência do cálculo "por dentro" do ICMS, conferido à mão:
//
//	valor aduaneiro 1000,00 | II 10% = 100,00 | IPI 5% = 55,00
//	PIS 1,65% = 16,50 | COFINS 7,60% = 76,00 | despesas na base 50,00
//	ICMS 18%:
//	  base antes  = 1000 + 100 + 55 + 16,50 + 76 + 50 = 1297,50
//	  fator       = 1 − 18/100 = 0,82
//	  base final  = 1297,50 / 0,82 = 1582,3171
//	  ICMS devido = 1582,3171 − 1297,50 = 284,8171
//
// Se alguém mexer na montagem da base ou na fórmula do gross-up, este teste
// quebra antes de o erro chegar a uma DI real.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tributo(aliquota, devido string) *entity.TributoInformado {
	return &entity.TributoInformado{Aliquota: dec(aliquota), ValorDevido: dec(devido)}
}

func tabelaTeste() *tributos.TabelaFiscal {
	return &tributos.TabelaFiscal{
		AliquotasICMS: map[string]decimal.Decimal{
			"GO": dec("19"),
			"SP": dec("18"),
			"ES": dec("17"),
		},
		AliquotasNCM: map[string]decimal.Decimal{},
		Beneficios:   map[string]tributos.Beneficio{},
	}
}

func adicaoTeste() entity.Adicao {
	return entity.Adicao{
		Numero:      "001",
		NCM:         "84713012",
		ValorReais:  dec("1000.00"),
		PesoLiquido: dec("250"),
		Tributos: entity.TributosAdicao{
			II:     tributo("10", "100.00"),
			IPI:    tributo("5", "55.00"),
			PIS:    tributo("1.65", "16.50"),
			COFINS: tributo("7.60", "76.00"),
		},
	}
}

func assertDecimal(t *testing.T, esperado string, obtido decimal.Decimal, casas int32) {
	t.Helper()
	assert.Equal(t, esperado, obtido.Round(casas).StringFixed(casas))
}

func TestCalcularAdicao_VetorReferencia(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "SP")
	adicao := adicaoTeste()

	resultado, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{Automaticas: dec("50.00")})
	require.NoError(t, err)

	assertDecimal(t, "1297.50", resultado.ICMS.BaseAntes, 2)
	assertDecimal(t, "0.82", resultado.ICMS.FatorDivisao, 2)
	assertDecimal(t, "1582.32", resultado.ICMS.BaseFinal, 2)
	assertDecimal(t, "284.82", resultado.ICMS.ValorDevido, 2)

	// Federais repassados dos descritores, bases registradas para rastreio.
	assert.True(t, resultado.II.ValorDevido.Equal(dec("100.00")))
	assert.True(t, resultado.IPI.ValorDevido.Equal(dec("55.00")))
	assert.True(t, resultado.IPI.BaseCalculo.Equal(dec("1100.00")))
	assert.True(t, resultado.PIS.BaseCalculo.Equal(dec("1000.00")))
	assert.True(t, resultado.COFINS.BaseCalculo.Equal(dec("1000.00")))

	assertDecimal(t, "532.32", resultado.TotalImpostos, 2)
	assertDecimal(t, "1582.32", resultado.CustoTotal, 2)
}

// TestCalcularAdicao_IdentidadeGrossUp verifica a identidade algébrica do
// cálculo por dentro: base_final × (1 − alíquota/100) == base_antes.
func TestCalcularAdicao_IdentidadeGrossUp(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "GO")
	adicao := adicaoTeste()

	resultado, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	require.NoError(t, err)

	reconstruida := resultado.ICMS.BaseFinal.Mul(resultado.ICMS.FatorDivisao)
	diferenca := reconstruida.Sub(resultado.ICMS.BaseAntes).Abs()
	assert.True(t, diferenca.LessThan(dec("0.0000000001")),
		"base_final × fator deve reconstruir a base antes (diferença %s)", diferenca)

	assert.True(t, resultado.ICMS.ValorDevido.Equal(resultado.ICMS.BaseFinal.Sub(resultado.ICMS.BaseAntes)))
}

func TestCalcularAdicao_CustoTotalIncluiDespesasForaDaBase(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "SP")
	adicao := adicaoTeste()

	despesas := entity.DespesasRateadas{
		Automaticas:       dec("50.00"),
		ExtrasTributaveis: dec("20.00"),
		ExtrasCustos:      dec("30.00"),
	}
	resultado, err := calc.CalcularAdicao(&adicao, despesas)
	require.NoError(t, err)

	// Só automáticas + extras tributáveis entram na base do ICMS.
	assert.True(t, resultado.ICMS.DespesasInclusas.Equal(dec("70.00")))
	// Mas o custo total carrega as três parcelas.
	esperado := adicao.ValorReais.Add(resultado.TotalImpostos).Add(dec("100.00"))
	assert.True(t, resultado.CustoTotal.Equal(esperado))
}

func TestCalcularAdicao_TributoAusenteEhFatal(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "SP")
	adicao := adicaoTeste()
	adicao.Tributos.IPI = nil

	resultado, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTributoAusente)
	assert.Nil(t, resultado, "tributo ausente nunca vira resultado com valor zero")
}

func TestCalcularAdicao_SemValorAduaneiro(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "SP")
	adicao := adicaoTeste()
	adicao.ValorReais = decimal.Zero

	_, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCalcularAdicao_UFSemAliquota(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "ZZ")
	adicao := adicaoTeste()

	_, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	assert.ErrorIs(t, err, domain.ErrAliquotaInvalida)
}

func TestCalcularAdicao_AliquotaCemOuMais(t *testing.T) {
	tabela := tabelaTeste()
	tabela.AliquotasICMS["XX"] = dec("100")
	calc := tributos.NewCalculadora(tabela, "XX")
	adicao := adicaoTeste()

	_, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	assert.ErrorIs(t, err, domain.ErrAliquotaInvalida)
}

func TestCalcularAdicao_CustoPorKg(t *testing.T) {
	calc := tributos.NewCalculadora(tabelaTeste(), "SP")
	adicao := adicaoTeste()

	resultado, err := calc.CalcularAdicao(&adicao, entity.DespesasRateadas{})
	require.NoError(t, err)
	assert.True(t, resultado.CustoPorKg.Equal(resultado.CustoTotal.Div(dec("250"))))
}
