package dto

import "github.com/shopspring/decimal"

// PrecificarRequest body para POST /api/calculos/:id/precificacao. Margens
// em percentual inteiro (30 = 30%); zeradas, aplicam-se os padrões.
type PrecificarRequest struct {
	MargemMinima   decimal.Decimal `json:"margem_minima,omitempty"`
	MargemSugerida decimal.Decimal `json:"margem_sugerida,omitempty"`
}

// PrecificacaoResponse sugestão de preços por item a partir do custo de
// desembaraço calculado.
type PrecificacaoResponse struct {
	CalculoID      string                       `json:"calculo_id"`
	NumeroDI       string                       `json:"numero_di"`
	MargemMinima   decimal.Decimal              `json:"margem_minima"`
	MargemSugerida decimal.Decimal              `json:"margem_sugerida"`
	Adicoes        []PrecificacaoAdicaoResponse `json:"adicoes"`
	CustoTotal     decimal.Decimal              `json:"custo_total"`
}

// PrecificacaoAdicaoResponse itens precificados de uma adição.
type PrecificacaoAdicaoResponse struct {
	Numero string                     `json:"numero"`
	NCM    string                     `json:"ncm"`
	Itens  []PrecificacaoItemResponse `json:"itens"`
}

// PrecificacaoItemResponse custo unitário e preços sugeridos de um item.
type PrecificacaoItemResponse struct {
	Indice             int             `json:"indice"`
	Descricao          string          `json:"descricao"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	CustoTotal         decimal.Decimal `json:"custo_total"`
	CustoUnitario      decimal.Decimal `json:"custo_unitario"`
	PrecoVendaMinimo   decimal.Decimal `json:"preco_venda_minimo"`
	PrecoVendaSugerido decimal.Decimal `json:"preco_venda_sugerido"`
}
