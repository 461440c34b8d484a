// Package fiscal carrega a tabela de alíquotas e benefícios a partir dos
// arquivos de configuração (aliquotas.json e beneficios.json) para a
// TabelaFiscal imutável consumida pelo motor de cálculo.
package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/internal/domain/tributos"
)

type arquivoAliquotas struct {
	Versao        string                      `mapstructure:"versao"`
	AliquotasICMS map[string]aliquotaEstadual `mapstructure:"aliquotas_icms"`
	AliquotasNCM  map[string]float64          `mapstructure:"aliquotas_ncm"`
}

type aliquotaEstadual struct {
	AliquotaInterna float64 `mapstructure:"aliquota_interna"`
}

type arquivoBeneficios struct {
	Versao     string                       `mapstructure:"versao"`
	Beneficios map[string]beneficioEstadual `mapstructure:"beneficios"`
}

type beneficioEstadual struct {
	Tipo            string   `mapstructure:"tipo"`
	Percentual      float64  `mapstructure:"percentual"`
	AliquotaEfetiva float64  `mapstructure:"aliquota_efetiva"`
	Codigo          string   `mapstructure:"codigo"`
	NCMs            []string `mapstructure:"ncms"`
}

// Carregar lê os dois arquivos JSON e monta a TabelaFiscal. O arquivo de
// benefícios é opcional (caminho vazio = nenhuma UF com benefício); o de
// alíquotas é obrigatório.
func Carregar(aliquotasPath, beneficiosPath string) (*tributos.TabelaFiscal, error) {
	var aliquotas arquivoAliquotas
	if err := lerJSON(aliquotasPath, &aliquotas); err != nil {
		return nil, fmt.Errorf("carregar alíquotas: %w", err)
	}

	tabela := &tributos.TabelaFiscal{
		AliquotasICMS: make(map[string]decimal.Decimal, len(aliquotas.AliquotasICMS)),
		AliquotasNCM:  make(map[string]decimal.Decimal, len(aliquotas.AliquotasNCM)),
		Beneficios:    map[string]tributos.Beneficio{},
	}
	for uf, a := range aliquotas.AliquotasICMS {
		tabela.AliquotasICMS[uf] = decimal.NewFromFloat(a.AliquotaInterna)
	}
	for ncm, a := range aliquotas.AliquotasNCM {
		tabela.AliquotasNCM[ncm] = decimal.NewFromFloat(a)
	}

	if beneficiosPath != "" {
		var beneficios arquivoBeneficios
		if err := lerJSON(beneficiosPath, &beneficios); err != nil {
			return nil, fmt.Errorf("carregar benefícios: %w", err)
		}
		for uf, b := range beneficios.Beneficios {
			tipo, err := tipoBeneficio(b.Tipo)
			if err != nil {
				return nil, fmt.Errorf("benefício da UF %s: %w", uf, err)
			}
			tabela.Beneficios[uf] = tributos.Beneficio{
				Tipo:            tipo,
				Percentual:      decimal.NewFromFloat(b.Percentual),
				AliquotaEfetiva: decimal.NewFromFloat(b.AliquotaEfetiva),
				Codigo:          b.Codigo,
				NCMs:            b.NCMs,
			}
		}
	}

	return tabela, nil
}

func lerJSON(path string, destino any) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(destino)
}

func tipoBeneficio(s string) (entity.TipoBeneficio, error) {
	switch s {
	case "credito":
		return entity.BeneficioCredito, nil
	case "diferimento":
		return entity.BeneficioDiferimento, nil
	case "aliquota_efetiva":
		return entity.BeneficioAliquotaEfetiva, nil
	default:
		return "", fmt.Errorf("tipo de benefício desconhecido: %q", s)
	}
}
