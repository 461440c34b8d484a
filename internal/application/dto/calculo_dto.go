package dto

import "github.com/shopspring/decimal"

// CalcularDeclaracaoRequest body para POST /api/declaracoes/calcular.
// A DI chega já estruturada do extrator externo; alíquotas em percentual
// inteiro (12 = 12%). Um tributo omitido na adição é erro fatal de entrada,
// nunca alíquota zero implícita.
type CalcularDeclaracaoRequest struct {
	NumeroDI         string                  `json:"numero_di"`
	UFDestino        string                  `json:"uf_destino,omitempty"` // vazio = UF padrão da configuração
	Adicoes          []AdicaoRequest         `json:"adicoes"`
	Despesas         DespesasRequest         `json:"despesas"`
	TotaisInformados TotaisInformadosRequest `json:"totais_informados"`
}

// AdicaoRequest adição da DI com tributos extraídos e lista de produtos.
type AdicaoRequest struct {
	Numero      string           `json:"numero"`
	NCM         string           `json:"ncm"`
	ValorReais  decimal.Decimal  `json:"valor_reais"`
	PesoLiquido decimal.Decimal  `json:"peso_liquido,omitempty"`
	Tributos    TributosRequest  `json:"tributos"`
	Produtos    []ProdutoRequest `json:"produtos,omitempty"`
}

// TributosRequest descritores federais; ponteiro nil sinaliza dado ausente.
type TributosRequest struct {
	II     *TributoRequest `json:"ii"`
	IPI    *TributoRequest `json:"ipi"`
	PIS    *TributoRequest `json:"pis"`
	COFINS *TributoRequest `json:"cofins"`
}

// TributoRequest alíquota e valor devido extraídos da DI.
type TributoRequest struct {
	Aliquota    decimal.Decimal `json:"aliquota"`
	ValorDevido decimal.Decimal `json:"valor_devido"`
}

// ProdutoRequest item de mercadoria da adição.
type ProdutoRequest struct {
	Descricao     string          `json:"descricao"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// DespesasRequest despesas aduaneiras da DI.
type DespesasRequest struct {
	Siscomex  decimal.Decimal       `json:"siscomex"`
	AFRMM     decimal.Decimal       `json:"afrmm"`
	Capatazia decimal.Decimal       `json:"capatazia"`
	Extras    []DespesaExtraRequest `json:"extras,omitempty"`
}

// DespesaExtraRequest despesa extra classificada pelo usuário.
type DespesaExtraRequest struct {
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	CompoeBaseICMS bool            `json:"compoe_base_icms"`
}

// TotaisInformadosRequest totais federais extraídos do documento de origem,
// usados só na validação cruzada.
type TotaisInformadosRequest struct {
	II     decimal.Decimal `json:"ii"`
	IPI    decimal.Decimal `json:"ipi"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
}

// CalculoResponse resultado consolidado para as rotas de cálculo.
type CalculoResponse struct {
	ID             string                  `json:"id"`
	NumeroDI       string                  `json:"numero_di"`
	UFDestino      string                  `json:"uf_destino"`
	NumeroAdicoes  int                     `json:"numero_adicoes"`
	ValorAduaneiro decimal.Decimal         `json:"valor_aduaneiro"`
	DespesasTotais decimal.Decimal         `json:"despesas_totais"`
	TotalII        decimal.Decimal         `json:"total_ii"`
	TotalIPI       decimal.Decimal         `json:"total_ipi"`
	TotalPIS       decimal.Decimal         `json:"total_pis"`
	TotalCOFINS    decimal.Decimal         `json:"total_cofins"`
	TotalICMS      decimal.Decimal         `json:"total_icms"`
	TotalImpostos  decimal.Decimal         `json:"total_impostos"`
	CustoTotal     decimal.Decimal         `json:"custo_total"`
	Adicoes        []CalculoAdicaoResponse `json:"adicoes"`
	Validacao      ValidacaoResponse       `json:"validacao"`
	CreatedAt      string                  `json:"created_at"`
}

// CalculoAdicaoResponse resultado de uma adição com seus itens.
type CalculoAdicaoResponse struct {
	Numero        string                   `json:"numero"`
	NCM           string                   `json:"ncm"`
	ValorReais    decimal.Decimal          `json:"valor_reais"`
	II            TributoResponse          `json:"ii"`
	IPI           TributoResponse          `json:"ipi"`
	PIS           TributoResponse          `json:"pis"`
	COFINS        TributoResponse          `json:"cofins"`
	ICMS          ICMSResponse             `json:"icms"`
	Despesas      DespesasRateadasResponse `json:"despesas"`
	TotalImpostos decimal.Decimal          `json:"total_impostos"`
	CustoTotal    decimal.Decimal          `json:"custo_total"`
	CustoPorKg    decimal.Decimal          `json:"custo_por_kg"`
	Beneficio     *BeneficioResponse       `json:"beneficio,omitempty"`
	Itens         []CalculoItemResponse    `json:"itens"`
	Validacao     ValidacaoResponse        `json:"validacao"`
}

// CalculoItemResponse tributos recalculados de um item individual.
type CalculoItemResponse struct {
	Indice        int                      `json:"indice"`
	Descricao     string                   `json:"descricao"`
	Quantidade    decimal.Decimal          `json:"quantidade"`
	ValorUnitario decimal.Decimal          `json:"valor_unitario"`
	ValorItem     decimal.Decimal          `json:"valor_item"`
	II            TributoResponse          `json:"ii"`
	IPI           TributoResponse          `json:"ipi"`
	PIS           TributoResponse          `json:"pis"`
	COFINS        TributoResponse          `json:"cofins"`
	ICMS          ICMSResponse             `json:"icms"`
	Despesas      DespesasRateadasResponse `json:"despesas"`
	CustoTotal    decimal.Decimal          `json:"custo_total"`
}

// TributoResponse alíquota, base e valor devido.
type TributoResponse struct {
	Aliquota    decimal.Decimal `json:"aliquota"`
	BaseCalculo decimal.Decimal `json:"base_calculo"`
	ValorDevido decimal.Decimal `json:"valor_devido"`
}

// ICMSResponse detalhe do cálculo "por dentro".
type ICMSResponse struct {
	Aliquota     decimal.Decimal `json:"aliquota"`
	BaseAntes    decimal.Decimal `json:"base_antes"`
	BaseFinal    decimal.Decimal `json:"base_final"`
	FatorDivisao decimal.Decimal `json:"fator_divisao"`
	ValorDevido  decimal.Decimal `json:"valor_devido"`
}

// DespesasRateadasResponse parcela de despesas atribuída ao nível.
type DespesasRateadasResponse struct {
	Automaticas       decimal.Decimal `json:"automaticas"`
	ExtrasTributaveis decimal.Decimal `json:"extras_tributaveis"`
	ExtrasCustos      decimal.Decimal `json:"extras_custos"`
}

// BeneficioResponse desfecho do benefício fiscal da UF.
type BeneficioResponse struct {
	Tipo            string          `json:"tipo"`
	Percentual      decimal.Decimal `json:"percentual,omitempty"`
	AliquotaEfetiva decimal.Decimal `json:"aliquota_efetiva,omitempty"`
	Codigo          string          `json:"codigo,omitempty"`
	ICMSOriginal    decimal.Decimal `json:"icms_original"`
	ICMSLiquido     decimal.Decimal `json:"icms_liquido"`
	Economia        decimal.Decimal `json:"economia"`
	EconomiaDeFluxo bool            `json:"economia_de_fluxo"`
	Motivo          string          `json:"motivo,omitempty"`
}

// ValidacaoResponse reconciliação calculado × autoritativo.
type ValidacaoResponse struct {
	OK         bool                       `json:"ok"`
	Tolerancia decimal.Decimal            `json:"tolerancia"`
	Tributos   []ValidacaoTributoResponse `json:"tributos"`
}

// ValidacaoTributoResponse divergência de um tributo.
type ValidacaoTributoResponse struct {
	Tributo          string          `json:"tributo"`
	Esperado         decimal.Decimal `json:"esperado"`
	Calculado        decimal.Decimal `json:"calculado"`
	Diferenca        decimal.Decimal `json:"diferenca"`
	Percentual       decimal.Decimal `json:"percentual"`
	DentroTolerancia bool            `json:"dentro_tolerancia"`
}

// CalculoResumoResponse linha da listagem GET /api/calculos.
type CalculoResumoResponse struct {
	ID            string          `json:"id"`
	NumeroDI      string          `json:"numero_di"`
	UFDestino     string          `json:"uf_destino"`
	TotalImpostos decimal.Decimal `json:"total_impostos"`
	CustoTotal    decimal.Decimal `json:"custo_total"`
	CreatedAt     string          `json:"created_at"`
}
