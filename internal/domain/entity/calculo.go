package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TributoCalculado alíquota, base de cálculo e valor devido de um tributo
// federal em um nível da hierarquia (adição ou item).
type TributoCalculado struct {
	Aliquota    decimal.Decimal
	BaseCalculo decimal.Decimal
	ValorDevido decimal.Decimal
}

// ICMSCalculado resultado do ICMS "por dentro": a base final já contém o
// próprio imposto (base_final = base_antes / (1 − alíquota/100)).
type ICMSCalculado struct {
	Aliquota         decimal.Decimal
	BaseAntes        decimal.Decimal
	BaseFinal        decimal.Decimal
	FatorDivisao     decimal.Decimal
	ValorDevido      decimal.Decimal
	DespesasInclusas decimal.Decimal
}

// DespesasRateadas parcela de despesas atribuída a uma adição ou item.
type DespesasRateadas struct {
	Automaticas       decimal.Decimal
	ExtrasTributaveis decimal.Decimal
	ExtrasCustos      decimal.Decimal
}

// TotalBaseICMS parcela rateada que integra a base do ICMS.
func (d DespesasRateadas) TotalBaseICMS() decimal.Decimal {
	return d.Automaticas.Add(d.ExtrasTributaveis)
}

// Total parcela rateada total (base ICMS + custos fora da base).
func (d DespesasRateadas) Total() decimal.Decimal {
	return d.Automaticas.Add(d.ExtrasTributaveis).Add(d.ExtrasCustos)
}

// CalculoAdicao resultado completo do cálculo de uma adição. Imutável após a
// criação: cada recálculo produz um valor novo.
type CalculoAdicao struct {
	AdicaoNumero  string
	NCM           string
	ValorReais    decimal.Decimal
	PesoLiquido   decimal.Decimal
	Despesas      DespesasRateadas
	II            TributoCalculado
	IPI           TributoCalculado
	PIS           TributoCalculado
	COFINS        TributoCalculado
	ICMS          ICMSCalculado
	TotalImpostos decimal.Decimal
	CustoTotal    decimal.Decimal
	CustoPorKg    decimal.Decimal
	Beneficio     *BeneficioAplicado // nil quando não há benefício aplicável
	Itens         []CalculoItem
	Validacao     ValidacaoAdicao
}

// CalculoItem resultado do cálculo individual de um item, com tributos
// recalculados por alíquota (não mero rateio do total da adição).
type CalculoItem struct {
	AdicaoNumero  string
	Indice        int
	Descricao     string
	NCM           string
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
	ValorItem     decimal.Decimal
	II            TributoCalculado
	IPI           TributoCalculado
	PIS           TributoCalculado
	COFINS        TributoCalculado
	Despesas      DespesasRateadas
	ICMS          ICMSCalculado
	CustoTotal    decimal.Decimal // igual à base final do ICMS
}

// ValidacaoAdicao reconciliação não fatal: soma dos tributos recalculados por
// item contra os valores autoritativos da adição.
type ValidacaoAdicao struct {
	AdicaoNumero string
	Tolerancia   decimal.Decimal
	Tributos     []ValidacaoTributo
	OK           bool
}

// ValidacaoTributo divergência calculado × autoritativo para um tributo.
type ValidacaoTributo struct {
	Tributo          string
	Esperado         decimal.Decimal
	Calculado        decimal.Decimal
	Diferenca        decimal.Decimal
	Percentual       decimal.Decimal
	DentroTolerancia bool
}

// TipoBeneficio variante fechada de política de benefício fiscal.
type TipoBeneficio string

const (
	BeneficioNenhum          TipoBeneficio = "nenhum"
	BeneficioCredito         TipoBeneficio = "credito"
	BeneficioDiferimento     TipoBeneficio = "diferimento"
	BeneficioAliquotaEfetiva TipoBeneficio = "aliquota_efetiva"
)

// BeneficioAplicado desfecho da aplicação de um benefício fiscal sobre o ICMS
// de uma adição. O valor oficial permanece no CalculoAdicao; aqui ficam o
// líquido pós-benefício e a economia registrada.
type BeneficioAplicado struct {
	Tipo            TipoBeneficio
	Percentual      decimal.Decimal // crédito/diferimento
	AliquotaEfetiva decimal.Decimal // regime de alíquota efetiva
	Codigo          string          // código normativo (diferimento)
	ICMSOriginal    decimal.Decimal
	ICMSLiquido     decimal.Decimal
	Economia        decimal.Decimal
	EconomiaDeFluxo bool // true quando a economia é só postergação de caixa
	Motivo          string
}

// CalculoDeclaracao consolidação da DI inteira: soma das adições mais o
// relatório de validação cruzada contra os totais informados.
type CalculoDeclaracao struct {
	NumeroDI       string
	UFDestino      string
	NumeroAdicoes  int
	ValorAduaneiro decimal.Decimal
	DespesasTotais decimal.Decimal
	TotalII        decimal.Decimal
	TotalIPI       decimal.Decimal
	TotalPIS       decimal.Decimal
	TotalCOFINS    decimal.Decimal
	TotalICMS      decimal.Decimal
	TotalImpostos  decimal.Decimal
	CustoTotal     decimal.Decimal
	Adicoes        []CalculoAdicao
	Validacao      RelatorioValidacao
}

// RelatorioValidacao validação cruzada no nível da declaração: totais
// calculados contra os totais federais extraídos do documento de origem.
type RelatorioValidacao struct {
	Tolerancia decimal.Decimal
	Tributos   []ValidacaoTributo
	OK         bool
}

// CalculoRegistro registro persistido de um cálculo concluído.
type CalculoRegistro struct {
	ID            string
	NumeroDI      string
	UFDestino     string
	TotalImpostos decimal.Decimal
	CustoTotal    decimal.Decimal
	Resultado     *CalculoDeclaracao
	CreatedAt     time.Time
}
