package tributos

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
)

// AplicarBeneficio aplica a política de benefício fiscal da UF sobre o ICMS
// de uma adição. Função pura de (resultado, descritor) → desfecho: o valor
// oficial do CalculoAdicao nunca é alterado; o líquido pós-benefício e a
// economia ficam só no BeneficioAplicado.
func AplicarBeneficio(calc *entity.CalculoAdicao, b Beneficio) entity.BeneficioAplicado {
	icms := calc.ICMS.ValorDevido

	if !ncmElegivel(calc.NCM, b.NCMs) {
		return entity.BeneficioAplicado{
			Tipo:         entity.BeneficioNenhum,
			ICMSOriginal: icms,
			ICMSLiquido:  icms,
			Economia:     decimal.Zero,
			Motivo:       "NCM não contemplada no benefício",
		}
	}

	switch b.Tipo {
	case entity.BeneficioCredito:
		credito := icms.Mul(b.Percentual).Div(cem)
		return entity.BeneficioAplicado{
			Tipo:         entity.BeneficioCredito,
			Percentual:   b.Percentual,
			ICMSOriginal: icms,
			ICMSLiquido:  icms.Sub(credito),
			Economia:     credito,
		}
	case entity.BeneficioDiferimento:
		// Mesma aritmética do crédito, mas a economia é postergação de caixa,
		// não redução definitiva; o código normativo segue para o relatório.
		diferido := icms.Mul(b.Percentual).Div(cem)
		return entity.BeneficioAplicado{
			Tipo:            entity.BeneficioDiferimento,
			Percentual:      b.Percentual,
			Codigo:          b.Codigo,
			ICMSOriginal:    icms,
			ICMSLiquido:     icms.Sub(diferido),
			Economia:        diferido,
			EconomiaDeFluxo: true,
		}
	case entity.BeneficioAliquotaEfetiva:
		// Regime FUNDAP: o líquido é a alíquota efetiva sobre a base final.
		efetivo := calc.ICMS.BaseFinal.Mul(b.AliquotaEfetiva).Div(cem)
		return entity.BeneficioAplicado{
			Tipo:            entity.BeneficioAliquotaEfetiva,
			AliquotaEfetiva: b.AliquotaEfetiva,
			ICMSOriginal:    icms,
			ICMSLiquido:     efetivo,
			Economia:        icms.Sub(efetivo),
		}
	default:
		return entity.BeneficioAplicado{
			Tipo:         entity.BeneficioNenhum,
			ICMSOriginal: icms,
			ICMSLiquido:  icms,
			Economia:     decimal.Zero,
			Motivo:       "tipo de benefício desconhecido",
		}
	}
}

// ncmElegivel confere a NCM contra os prefixos elegíveis do benefício.
// Lista vazia significa que todas as NCMs são elegíveis.
func ncmElegivel(ncm string, prefixos []string) bool {
	if len(prefixos) == 0 {
		return true
	}
	for _, p := range prefixos {
		if strings.HasPrefix(ncm, p) {
			return true
		}
	}
	return false
}
