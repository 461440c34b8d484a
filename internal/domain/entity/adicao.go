package entity

import "github.com/shopspring/decimal"

// Adicao é uma linha agrupada da DI: mesma NCM e mesmo conjunto de alíquotas
// federais para todos os produtos que a compõem.
type Adicao struct {
	Numero      string
	NCM         string
	ValorReais  decimal.Decimal // valor aduaneiro (CIF) em BRL
	PesoLiquido decimal.Decimal // kg
	Tributos    TributosAdicao
	Produtos    []Produto
}

// TributosAdicao descritores dos quatro tributos federais extraídos da DI.
// Um descritor nil significa dado ausente no documento de origem — erro fatal
// de entrada, nunca tratado como alíquota zero.
type TributosAdicao struct {
	II     *TributoInformado
	IPI    *TributoInformado
	PIS    *TributoInformado
	COFINS *TributoInformado
}

// TributoInformado alíquota ad valorem (percentual inteiro, ex.: 12 = 12%) e
// valor devido conforme extraídos do documento de origem.
type TributoInformado struct {
	Aliquota    decimal.Decimal
	ValorDevido decimal.Decimal
}
