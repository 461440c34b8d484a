package tributos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// CalcularItem calcula os tributos de um item individual. Os quatro tributos
// federais são recalculados pela alíquota da adição sobre o valor do item
// (e não rateados do total), para que o arredondamento se distribua pelos
// itens; as despesas chegam por rateio em dois estágios (DI → adição → item)
// e o ICMS "por dentro" usa a alíquota específica da NCM, quando houver.
func (c *Calculadora) CalcularItem(
	produto *entity.Produto,
	adicao *entity.Adicao,
	valorTotalDI decimal.Decimal,
	despesas *entity.DespesasAduaneiras,
) (*entity.CalculoItem, error) {
	valorItem := produto.ValorTotal()
	if !valorItem.IsPositive() {
		return nil, fmt.Errorf("%w: item da adição %s com valor total %s", domain.ErrEntradaInvalida, adicao.Numero, valorItem)
	}
	if err := validarTributos(adicao); err != nil {
		return nil, err
	}
	if !adicao.ValorReais.IsPositive() {
		return nil, fmt.Errorf("%w: adição %s com valor aduaneiro %s", domain.ErrRateioIndefinido, adicao.Numero, adicao.ValorReais)
	}

	t := adicao.Tributos

	// II = valor × alíquota; IPI = (valor + II) × alíquota;
	// PIS e COFINS = valor × alíquota. Alíquotas em percentual inteiro.
	ii := entity.TributoCalculado{
		Aliquota:    t.II.Aliquota,
		BaseCalculo: valorItem,
		ValorDevido: valorItem.Mul(t.II.Aliquota).Div(cem),
	}
	baseIPI := valorItem.Add(ii.ValorDevido)
	ipi := entity.TributoCalculado{
		Aliquota:    t.IPI.Aliquota,
		BaseCalculo: baseIPI,
		ValorDevido: baseIPI.Mul(t.IPI.Aliquota).Div(cem),
	}
	pis := entity.TributoCalculado{
		Aliquota:    t.PIS.Aliquota,
		BaseCalculo: valorItem,
		ValorDevido: valorItem.Mul(t.PIS.Aliquota).Div(cem),
	}
	cofins := entity.TributoCalculado{
		Aliquota:    t.COFINS.Aliquota,
		BaseCalculo: valorItem,
		ValorDevido: valorItem.Mul(t.COFINS.Aliquota).Div(cem),
	}

	rateio, err := c.ratearDespesasItem(valorItem, adicao, valorTotalDI, despesas)
	if err != nil {
		return nil, err
	}

	aliquotaICMS, err := c.tabela.AliquotaICMSParaNCM(adicao.NCM, c.uf)
	if err != nil {
		return nil, fmt.Errorf("adição %s: %w", adicao.Numero, err)
	}
	baseAntes := valorItem.
		Add(ii.ValorDevido).
		Add(ipi.ValorDevido).
		Add(pis.ValorDevido).
		Add(cofins.ValorDevido).
		Add(rateio.TotalBaseICMS())
	icms, err := calcularICMSPorDentro(baseAntes, aliquotaICMS, rateio.TotalBaseICMS())
	if err != nil {
		return nil, fmt.Errorf("adição %s: %w", adicao.Numero, err)
	}

	return &entity.CalculoItem{
		AdicaoNumero:  adicao.Numero,
		Descricao:     produto.Descricao,
		NCM:           adicao.NCM,
		Quantidade:    produto.Quantidade,
		ValorUnitario: produto.ValorUnitario,
		ValorItem:     valorItem,
		II:            ii,
		IPI:           ipi,
		PIS:           pis,
		COFINS:        cofins,
		Despesas:      rateio,
		ICMS:          icms,
		// A base final do gross-up já é valor + tributos + despesas rateadas.
		CustoTotal: icms.BaseFinal,
	}, nil
}

// ratearDespesasItem rateio em dois estágios, aplicado de forma independente
// às despesas automáticas e às extras tributáveis: estágio A pela
// participação da adição na DI, estágio B pela participação do item na adição.
func (c *Calculadora) ratearDespesasItem(
	valorItem decimal.Decimal,
	adicao *entity.Adicao,
	valorTotalDI decimal.Decimal,
	despesas *entity.DespesasAduaneiras,
) (entity.DespesasRateadas, error) {
	var rateio entity.DespesasRateadas
	if despesas == nil {
		return rateio, nil
	}

	for _, comp := range []struct {
		total   decimal.Decimal
		destino *decimal.Decimal
	}{
		{despesas.TotalAutomaticas(), &rateio.Automaticas},
		{despesas.TotalExtrasTributaveis(), &rateio.ExtrasTributaveis},
	} {
		if comp.total.IsZero() {
			continue
		}
		daAdicao, err := RatearPorValor(comp.total, adicao.ValorReais, valorTotalDI)
		if err != nil {
			return entity.DespesasRateadas{}, fmt.Errorf("rateio DI → adição %s: %w", adicao.Numero, err)
		}
		doItem, err := RatearPorValor(daAdicao, valorItem, adicao.ValorReais)
		if err != nil {
			return entity.DespesasRateadas{}, fmt.Errorf("rateio adição %s → item: %w", adicao.Numero, err)
		}
		*comp.destino = doItem
	}
	return rateio, nil
}
