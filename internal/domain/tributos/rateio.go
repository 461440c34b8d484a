// Package tributos implementa o motor de cálculo de tributos de importação
// (II, IPI, PIS, COFINS e ICMS) e o rateio hierárquico DI → adição → item.
// Cálculo puro e síncrono: sem I/O, sem estado compartilhado; cada execução
// sobre a mesma entrada produz o mesmo resultado.
package tributos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain"
)

var cem = decimal.NewFromInt(100)

// RatearPorValor devolve a parcela de total proporcional à participação de
// valor em referencia (total × valor / referencia). Referência zero ou
// negativa é erro fatal de entrada — nunca tratada como peso zero.
func RatearPorValor(total, valor, referencia decimal.Decimal) (decimal.Decimal, error) {
	if !referencia.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: referência %s", domain.ErrRateioIndefinido, referencia)
	}
	return total.Mul(valor).Div(referencia), nil
}
