package entity

import "github.com/shopspring/decimal"

// Declaracao representa uma Declaração de Importação (DI) já extraída do
// documento de origem, pronta para o cálculo de tributos. Imutável durante o
// cálculo: o motor lê adições, despesas e totais informados e produz um
// resultado novo a cada execução.
type Declaracao struct {
	ID               string
	NumeroDI         string
	UFDestino        string
	Adicoes          []Adicao
	Despesas         DespesasAduaneiras
	TotaisInformados TributosTotaisInformados
}

// TributosTotaisInformados totais de tributos federais extraídos do documento
// de origem. Usados apenas na validação cruzada do agregador, nunca como
// insumo de cálculo.
type TributosTotaisInformados struct {
	II     decimal.Decimal
	IPI    decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
}

// ValorTotal soma o valor em reais de todas as adições. É o denominador do
// rateio estágio A (participação de cada adição na DI).
func (d *Declaracao) ValorTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range d.Adicoes {
		total = total.Add(d.Adicoes[i].ValorReais)
	}
	return total
}
