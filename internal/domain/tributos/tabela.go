package tributos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// TabelaFiscal tabela de alíquotas e benefícios por UF, carregada uma única
// vez da configuração e consumida somente para leitura pelo motor. Chave
// ausente em AliquotasNCM ou Beneficios significa "sem override / sem
// benefício"; alíquota de UF ausente é erro fatal.
type TabelaFiscal struct {
	AliquotasICMS map[string]decimal.Decimal // UF -> alíquota interna (%)
	AliquotasNCM  map[string]decimal.Decimal // NCM -> alíquota específica (%)
	Beneficios    map[string]Beneficio       // UF -> benefício fiscal
}

// Beneficio descritor de benefício fiscal de uma UF.
type Beneficio struct {
	Tipo            entity.TipoBeneficio
	Percentual      decimal.Decimal // crédito outorgado / parcela diferida (%)
	AliquotaEfetiva decimal.Decimal // regime de alíquota efetiva (%)
	Codigo          string          // código normativo, informativo
	NCMs            []string        // prefixos de NCM elegíveis; vazio = todos
}

// AliquotaICMS alíquota interna da UF. Alíquota não configurada, zero,
// negativa ou ≥ 100 (divisor do cálculo "por dentro" inválido) é fatal.
func (t *TabelaFiscal) AliquotaICMS(uf string) (decimal.Decimal, error) {
	aliquota, ok := t.AliquotasICMS[uf]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: UF %s não configurada", domain.ErrAliquotaInvalida, uf)
	}
	if err := validarAliquotaICMS(aliquota); err != nil {
		return decimal.Zero, fmt.Errorf("UF %s: %w", uf, err)
	}
	return aliquota, nil
}

// AliquotaICMSParaNCM alíquota a aplicar no item: override por NCM quando
// configurado, senão a alíquota interna da UF.
func (t *TabelaFiscal) AliquotaICMSParaNCM(ncm, uf string) (decimal.Decimal, error) {
	if aliquota, ok := t.AliquotasNCM[ncm]; ok {
		if err := validarAliquotaICMS(aliquota); err != nil {
			return decimal.Zero, fmt.Errorf("NCM %s: %w", ncm, err)
		}
		return aliquota, nil
	}
	return t.AliquotaICMS(uf)
}

// BeneficioUF benefício configurado para a UF, se houver.
func (t *TabelaFiscal) BeneficioUF(uf string) (Beneficio, bool) {
	b, ok := t.Beneficios[uf]
	return b, ok
}

func validarAliquotaICMS(aliquota decimal.Decimal) error {
	if !aliquota.IsPositive() {
		return fmt.Errorf("%w: alíquota %s", domain.ErrAliquotaInvalida, aliquota)
	}
	if aliquota.GreaterThanOrEqual(cem) {
		return fmt.Errorf("%w: alíquota %s ≥ 100 torna o divisor não finito", domain.ErrAliquotaInvalida, aliquota)
	}
	return nil
}
