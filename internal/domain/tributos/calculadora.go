package tributos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// ToleranciaPadrao tolerância monetária única para as reconciliações
// item × adição e declaração × documento de origem (R$ 0,10).
var ToleranciaPadrao = decimal.NewFromFloat(0.10)

// Calculadora motor de cálculo para uma UF de destino e uma tabela fiscal
// fixas. Imutável após a construção; segura para reuso entre declarações.
type Calculadora struct {
	tabela     *TabelaFiscal
	uf         string
	tolerancia decimal.Decimal
}

// Opcao ajuste opcional da calculadora.
type Opcao func(*Calculadora)

// ComTolerancia substitui a tolerância padrão de reconciliação.
func ComTolerancia(t decimal.Decimal) Opcao {
	return func(c *Calculadora) {
		if t.IsPositive() {
			c.tolerancia = t
		}
	}
}

// NewCalculadora constrói o motor para a UF de destino informada.
func NewCalculadora(tabela *TabelaFiscal, uf string, opts ...Opcao) *Calculadora {
	c := &Calculadora{
		tabela:     tabela,
		uf:         uf,
		tolerancia: ToleranciaPadrao,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CalcularAdicao monta o resultado tributário de uma adição: II, IPI, PIS e
// COFINS são repassados dos descritores extraídos da DI (as bases são
// registradas só para rastreabilidade) e o ICMS é calculado "por dentro"
// sobre CIF + tributos federais + despesas rateadas na base.
func (c *Calculadora) CalcularAdicao(adicao *entity.Adicao, despesas entity.DespesasRateadas) (*entity.CalculoAdicao, error) {
	if !adicao.ValorReais.IsPositive() {
		return nil, fmt.Errorf("%w: adição %s sem valor aduaneiro", domain.ErrEntradaInvalida, adicao.Numero)
	}
	if err := validarTributos(adicao); err != nil {
		return nil, err
	}

	valor := adicao.ValorReais
	t := adicao.Tributos

	ii := entity.TributoCalculado{
		Aliquota:    t.II.Aliquota,
		BaseCalculo: valor,
		ValorDevido: t.II.ValorDevido,
	}
	ipi := entity.TributoCalculado{
		Aliquota:    t.IPI.Aliquota,
		BaseCalculo: valor.Add(ii.ValorDevido),
		ValorDevido: t.IPI.ValorDevido,
	}
	pis := entity.TributoCalculado{
		Aliquota:    t.PIS.Aliquota,
		BaseCalculo: valor,
		ValorDevido: t.PIS.ValorDevido,
	}
	cofins := entity.TributoCalculado{
		Aliquota:    t.COFINS.Aliquota,
		BaseCalculo: valor,
		ValorDevido: t.COFINS.ValorDevido,
	}

	aliquotaICMS, err := c.tabela.AliquotaICMS(c.uf)
	if err != nil {
		return nil, fmt.Errorf("adição %s: %w", adicao.Numero, err)
	}
	baseAntes := valor.
		Add(ii.ValorDevido).
		Add(ipi.ValorDevido).
		Add(pis.ValorDevido).
		Add(cofins.ValorDevido).
		Add(despesas.TotalBaseICMS())
	icms, err := calcularICMSPorDentro(baseAntes, aliquotaICMS, despesas.TotalBaseICMS())
	if err != nil {
		return nil, fmt.Errorf("adição %s: %w", adicao.Numero, err)
	}

	totalImpostos := ii.ValorDevido.
		Add(ipi.ValorDevido).
		Add(pis.ValorDevido).
		Add(cofins.ValorDevido).
		Add(icms.ValorDevido)
	custoTotal := valor.Add(totalImpostos).Add(despesas.Total())

	custoPorKg := decimal.Zero
	if adicao.PesoLiquido.IsPositive() {
		custoPorKg = custoTotal.Div(adicao.PesoLiquido)
	}

	return &entity.CalculoAdicao{
		AdicaoNumero:  adicao.Numero,
		NCM:           adicao.NCM,
		ValorReais:    valor,
		PesoLiquido:   adicao.PesoLiquido,
		Despesas:      despesas,
		II:            ii,
		IPI:           ipi,
		PIS:           pis,
		COFINS:        cofins,
		ICMS:          icms,
		TotalImpostos: totalImpostos,
		CustoTotal:    custoTotal,
		CustoPorKg:    custoPorKg,
	}, nil
}

// calcularICMSPorDentro aplica o gross-up: o ICMS integra a própria base,
// então base_final = base_antes / (1 − alíquota/100) e o imposto devido é a
// diferença entre as duas bases.
func calcularICMSPorDentro(baseAntes, aliquota, despesasInclusas decimal.Decimal) (entity.ICMSCalculado, error) {
	if err := validarAliquotaICMS(aliquota); err != nil {
		return entity.ICMSCalculado{}, err
	}
	fator := decimal.NewFromInt(1).Sub(aliquota.Div(cem))
	baseFinal := baseAntes.Div(fator)
	return entity.ICMSCalculado{
		Aliquota:         aliquota,
		BaseAntes:        baseAntes,
		BaseFinal:        baseFinal,
		FatorDivisao:     fator,
		ValorDevido:      baseFinal.Sub(baseAntes),
		DespesasInclusas: despesasInclusas,
	}, nil
}

// validarTributos exige os quatro descritores federais na adição. Descritor
// ausente é falha de integridade do documento, nunca alíquota zero implícita.
func validarTributos(adicao *entity.Adicao) error {
	t := adicao.Tributos
	for _, f := range []struct {
		nome string
		dado *entity.TributoInformado
	}{
		{"II", t.II},
		{"IPI", t.IPI},
		{"PIS", t.PIS},
		{"COFINS", t.COFINS},
	} {
		if f.dado == nil {
			return fmt.Errorf("%w: %s na adição %s", domain.ErrTributoAusente, f.nome, adicao.Numero)
		}
	}
	return nil
}
