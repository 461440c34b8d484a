package tributos

import (
	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// ProcessarItens roda o cálculo individual sobre todos os itens de uma adição
// e reconcilia a soma dos tributos federais recalculados contra os valores
// autoritativos da adição. Divergência acima da tolerância não aborta o
// cálculo: fica registrada como dado estruturado na validação, e quem chama
// decide o que fazer com ela.
func (c *Calculadora) ProcessarItens(
	adicao *entity.Adicao,
	calcAdicao *entity.CalculoAdicao,
	valorTotalDI decimal.Decimal,
	despesas *entity.DespesasAduaneiras,
) ([]entity.CalculoItem, entity.ValidacaoAdicao, error) {
	produtos := adicao.Produtos
	if len(produtos) == 0 {
		// Adição sem lista de produtos vira um item único cobrindo o valor
		// inteiro da adição, para que o pipeline por item sempre rode.
		produtos = []entity.Produto{{
			Descricao:     adicao.NCM,
			Quantidade:    decimal.NewFromInt(1),
			ValorUnitario: adicao.ValorReais,
		}}
	}

	itens := make([]entity.CalculoItem, 0, len(produtos))
	for i := range produtos {
		item, err := c.CalcularItem(&produtos[i], adicao, valorTotalDI, despesas)
		if err != nil {
			return nil, entity.ValidacaoAdicao{}, err
		}
		item.Indice = i + 1
		itens = append(itens, *item)
	}

	validacao := c.validarSomaTributos(adicao.Numero, calcAdicao, itens)
	return itens, validacao, nil
}

// validarSomaTributos compara, tributo a tributo, a soma recalculada por item
// com o valor autoritativo da adição. As duas grandezas são derivadas de
// forma independente e podem divergir por arredondamento.
func (c *Calculadora) validarSomaTributos(
	adicaoNumero string,
	calcAdicao *entity.CalculoAdicao,
	itens []entity.CalculoItem,
) entity.ValidacaoAdicao {
	var somaII, somaIPI, somaPIS, somaCOFINS decimal.Decimal
	for i := range itens {
		somaII = somaII.Add(itens[i].II.ValorDevido)
		somaIPI = somaIPI.Add(itens[i].IPI.ValorDevido)
		somaPIS = somaPIS.Add(itens[i].PIS.ValorDevido)
		somaCOFINS = somaCOFINS.Add(itens[i].COFINS.ValorDevido)
	}

	validacao := entity.ValidacaoAdicao{
		AdicaoNumero: adicaoNumero,
		Tolerancia:   c.tolerancia,
		OK:           true,
	}
	for _, cmp := range []struct {
		tributo   string
		esperado  decimal.Decimal
		calculado decimal.Decimal
	}{
		{"II", calcAdicao.II.ValorDevido, somaII},
		{"IPI", calcAdicao.IPI.ValorDevido, somaIPI},
		{"PIS", calcAdicao.PIS.ValorDevido, somaPIS},
		{"COFINS", calcAdicao.COFINS.ValorDevido, somaCOFINS},
	} {
		v := compararTributo(cmp.tributo, cmp.esperado, cmp.calculado, c.tolerancia)
		if !v.DentroTolerancia {
			validacao.OK = false
		}
		validacao.Tributos = append(validacao.Tributos, v)
	}
	return validacao
}

// compararTributo monta a entrada de validação com diferença absoluta e
// percentual. Esperado zero com diferença relevante vira 100%.
func compararTributo(tributo string, esperado, calculado, tolerancia decimal.Decimal) entity.ValidacaoTributo {
	diferenca := esperado.Sub(calculado).Abs()
	percentual := cem
	if esperado.IsPositive() {
		percentual = diferenca.Div(esperado).Mul(cem)
	} else if diferenca.IsZero() {
		percentual = decimal.Zero
	}
	return entity.ValidacaoTributo{
		Tributo:          tributo,
		Esperado:         esperado,
		Calculado:        calculado,
		Diferenca:        diferenca,
		Percentual:       percentual,
		DentroTolerancia: diferenca.LessThanOrEqual(tolerancia),
	}
}
