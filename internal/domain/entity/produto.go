package entity

import "github.com/shopspring/decimal"

// Produto é um item individual de mercadoria dentro de uma adição.
type Produto struct {
	Descricao     string
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
}

// ValorTotal valor do item (quantidade × valor unitário). Precisa ser
// estritamente positivo para que o rateio por valor seja definido.
func (p *Produto) ValorTotal() decimal.Decimal {
	return p.Quantidade.Mul(p.ValorUnitario)
}
