package tributos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// CalcularDeclaracao é o ponto de entrada do motor: calcula todas as adições
// da DI, rateia despesas e totais até o nível de item, aplica o benefício
// fiscal da UF e consolida tudo em um resultado único com o relatório de
// validação cruzada contra os totais informados no documento de origem.
// Qualquer adição malformada invalida a declaração inteira.
func (c *Calculadora) CalcularDeclaracao(d *entity.Declaracao) (*entity.CalculoDeclaracao, error) {
	if len(d.Adicoes) == 0 {
		return nil, fmt.Errorf("%w: DI %s", domain.ErrDeclaracaoSemAdicoes, d.NumeroDI)
	}

	// O valor total da DI é o denominador do rateio estágio A; precisa estar
	// pronto antes de qualquer cálculo por item.
	valorTotalDI := d.ValorTotal()

	resultado := &entity.CalculoDeclaracao{
		NumeroDI:      d.NumeroDI,
		UFDestino:     c.uf,
		NumeroAdicoes: len(d.Adicoes),
	}
	beneficio, temBeneficio := c.tabela.BeneficioUF(c.uf)

	for i := range d.Adicoes {
		adicao := &d.Adicoes[i]

		despesasAdicao, err := c.ratearDespesasAdicao(adicao, valorTotalDI, &d.Despesas)
		if err != nil {
			return nil, err
		}
		calc, err := c.CalcularAdicao(adicao, despesasAdicao)
		if err != nil {
			return nil, err
		}

		itens, validacao, err := c.ProcessarItens(adicao, calc, valorTotalDI, &d.Despesas)
		if err != nil {
			return nil, err
		}
		calc.Itens = itens
		calc.Validacao = validacao

		if temBeneficio {
			aplicado := AplicarBeneficio(calc, beneficio)
			calc.Beneficio = &aplicado
		}

		resultado.Adicoes = append(resultado.Adicoes, *calc)
		resultado.ValorAduaneiro = resultado.ValorAduaneiro.Add(calc.ValorReais)
		resultado.DespesasTotais = resultado.DespesasTotais.Add(calc.Despesas.Total())
		resultado.TotalII = resultado.TotalII.Add(calc.II.ValorDevido)
		resultado.TotalIPI = resultado.TotalIPI.Add(calc.IPI.ValorDevido)
		resultado.TotalPIS = resultado.TotalPIS.Add(calc.PIS.ValorDevido)
		resultado.TotalCOFINS = resultado.TotalCOFINS.Add(calc.COFINS.ValorDevido)
		resultado.TotalICMS = resultado.TotalICMS.Add(calc.ICMS.ValorDevido)
		resultado.CustoTotal = resultado.CustoTotal.Add(calc.CustoTotal)
	}

	resultado.TotalImpostos = resultado.TotalII.
		Add(resultado.TotalIPI).
		Add(resultado.TotalPIS).
		Add(resultado.TotalCOFINS).
		Add(resultado.TotalICMS)

	resultado.Validacao = c.validarTotaisInformados(d, resultado)
	return resultado, nil
}

// ratearDespesasAdicao estágio A do rateio: parcela das despesas da DI que
// cabe à adição, ponderada pelo valor aduaneiro.
func (c *Calculadora) ratearDespesasAdicao(
	adicao *entity.Adicao,
	valorTotalDI decimal.Decimal,
	despesas *entity.DespesasAduaneiras,
) (entity.DespesasRateadas, error) {
	var rateio entity.DespesasRateadas
	for _, comp := range []struct {
		total   decimal.Decimal
		destino *decimal.Decimal
	}{
		{despesas.TotalAutomaticas(), &rateio.Automaticas},
		{despesas.TotalExtrasTributaveis(), &rateio.ExtrasTributaveis},
		{despesas.TotalExtras().Sub(despesas.TotalExtrasTributaveis()), &rateio.ExtrasCustos},
	} {
		if comp.total.IsZero() {
			continue
		}
		parcela, err := RatearPorValor(comp.total, adicao.ValorReais, valorTotalDI)
		if err != nil {
			return entity.DespesasRateadas{}, fmt.Errorf("rateio de despesas da adição %s: %w", adicao.Numero, err)
		}
		*comp.destino = parcela
	}
	return rateio, nil
}

// validarTotaisInformados validação cruzada no nível da declaração: soma
// calculada de cada tributo federal contra o total extraído do documento.
func (c *Calculadora) validarTotaisInformados(d *entity.Declaracao, resultado *entity.CalculoDeclaracao) entity.RelatorioValidacao {
	relatorio := entity.RelatorioValidacao{
		Tolerancia: c.tolerancia,
		OK:         true,
	}
	for _, cmp := range []struct {
		tributo   string
		esperado  decimal.Decimal
		calculado decimal.Decimal
	}{
		{"II", d.TotaisInformados.II, resultado.TotalII},
		{"IPI", d.TotaisInformados.IPI, resultado.TotalIPI},
		{"PIS", d.TotaisInformados.PIS, resultado.TotalPIS},
		{"COFINS", d.TotaisInformados.COFINS, resultado.TotalCOFINS},
	} {
		v := compararTributo(cmp.tributo, cmp.esperado, cmp.calculado, c.tolerancia)
		if !v.DentroTolerancia {
			relatorio.OK = false
		}
		relatorio.Tributos = append(relatorio.Tributos, v)
	}
	return relatorio
}
