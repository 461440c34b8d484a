package entity

import "github.com/shopspring/decimal"

// DespesasAduaneiras despesas acessórias da DI. As três automáticas
// (SISCOMEX, AFRMM e capatazia) entram sempre na base do ICMS; as extras
// declaradas pelo usuário entram apenas quando marcadas com CompoeBaseICMS.
type DespesasAduaneiras struct {
	Siscomex  decimal.Decimal
	AFRMM     decimal.Decimal
	Capatazia decimal.Decimal
	Extras    []DespesaExtra
}

// DespesaExtra despesa adicional classificada pelo usuário.
type DespesaExtra struct {
	Descricao      string
	Valor          decimal.Decimal
	CompoeBaseICMS bool
}

// TotalAutomaticas soma das despesas automáticas da DI.
func (d *DespesasAduaneiras) TotalAutomaticas() decimal.Decimal {
	return d.Siscomex.Add(d.AFRMM).Add(d.Capatazia)
}

// TotalExtrasTributaveis soma das despesas extras que compõem a base do ICMS.
func (d *DespesasAduaneiras) TotalExtrasTributaveis() decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.Extras {
		if e.CompoeBaseICMS {
			total = total.Add(e.Valor)
		}
	}
	return total
}

// TotalExtras soma de todas as despesas extras, tributáveis ou não.
func (d *DespesasAduaneiras) TotalExtras() decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.Extras {
		total = total.Add(e.Valor)
	}
	return total
}

// TotalBaseICMS parcela das despesas que integra a base de cálculo do ICMS.
func (d *DespesasAduaneiras) TotalBaseICMS() decimal.Decimal {
	return d.TotalAutomaticas().Add(d.TotalExtrasTributaveis())
}

// Total custo total de despesas da DI (para o custo de desembaraço).
func (d *DespesasAduaneiras) Total() decimal.Decimal {
	return d.TotalAutomaticas().Add(d.TotalExtras())
}
