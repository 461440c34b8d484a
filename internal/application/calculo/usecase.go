// Package calculo orquestra o caso de uso de cálculo de uma DI: monta as
// entidades a partir do DTO, roda o motor de tributos, persiste o resultado
// e o devolve consolidado.
package calculo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/application/dto"
	"github.com/expertzy/importa-precifica-api/internal/domain"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/internal/domain/repository"
	"github.com/expertzy/importa-precifica-api/internal/domain/tributos"
	"github.com/expertzy/importa-precifica-api/pkg/logger"
)

// Opcoes parâmetros fiscais do caso de uso.
type Opcoes struct {
	UFPadrao   string
	Tolerancia decimal.Decimal
}

// UseCase caso de uso de cálculo de declarações.
type UseCase struct {
	tabela *tributos.TabelaFiscal
	repo   repository.CalculoRepository
	log    *logger.Logger
	opcoes Opcoes
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tabela *tributos.TabelaFiscal, repo repository.CalculoRepository, log *logger.Logger, opcoes Opcoes) *UseCase {
	return &UseCase{tabela: tabela, repo: repo, log: log, opcoes: opcoes}
}

// Calcular roda o motor sobre a DI recebida, grava o registro e devolve o
// resultado consolidado. Divergência de reconciliação não é erro: volta no
// relatório de validação e quem consome decide.
func (uc *UseCase) Calcular(ctx context.Context, in dto.CalcularDeclaracaoRequest) (*dto.CalculoResponse, error) {
	if in.NumeroDI == "" || len(in.Adicoes) == 0 {
		return nil, domain.ErrEntradaInvalida
	}

	uf := in.UFDestino
	if uf == "" {
		uf = uc.opcoes.UFPadrao
	}

	declaracao := toDeclaracao(in)
	motor := tributos.NewCalculadora(uc.tabela, uf, tributos.ComTolerancia(uc.opcoes.Tolerancia))
	resultado, err := motor.CalcularDeclaracao(declaracao)
	if err != nil {
		return nil, err
	}

	if !resultado.Validacao.OK {
		uc.log.Warn().
			Str("numero_di", in.NumeroDI).
			Str("uf", uf).
			Msg("totais calculados divergem dos informados no documento")
	}

	registro := &entity.CalculoRegistro{
		ID:            uuid.New().String(),
		NumeroDI:      resultado.NumeroDI,
		UFDestino:     resultado.UFDestino,
		TotalImpostos: resultado.TotalImpostos,
		CustoTotal:    resultado.CustoTotal,
		Resultado:     resultado,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, registro); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("calculo_id", registro.ID).
		Str("numero_di", registro.NumeroDI).
		Str("uf", registro.UFDestino).
		Int("adicoes", resultado.NumeroAdicoes).
		Str("total_impostos", registro.TotalImpostos.Round(2).StringFixed(2)).
		Msg("cálculo de DI concluído")

	return toResponse(registro), nil
}

// GetByID devolve um cálculo persistido com o detalhe completo.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CalculoResponse, error) {
	registro, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(registro), nil
}

// List lista cálculos em formato resumido.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CalculoResumoResponse, error) {
	page.DefaultPage()
	registros, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resumos := make([]dto.CalculoResumoResponse, 0, len(registros))
	for _, r := range registros {
		resumos = append(resumos, dto.CalculoResumoResponse{
			ID:            r.ID,
			NumeroDI:      r.NumeroDI,
			UFDestino:     r.UFDestino,
			TotalImpostos: r.TotalImpostos,
			CustoTotal:    r.CustoTotal,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		})
	}
	return resumos, nil
}

func toDeclaracao(in dto.CalcularDeclaracaoRequest) *entity.Declaracao {
	declaracao := &entity.Declaracao{
		NumeroDI:  in.NumeroDI,
		UFDestino: in.UFDestino,
		Despesas: entity.DespesasAduaneiras{
			Siscomex:  in.Despesas.Siscomex,
			AFRMM:     in.Despesas.AFRMM,
			Capatazia: in.Despesas.Capatazia,
		},
		TotaisInformados: entity.TributosTotaisInformados{
			II:     in.TotaisInformados.II,
			IPI:    in.TotaisInformados.IPI,
			PIS:    in.TotaisInformados.PIS,
			COFINS: in.TotaisInformados.COFINS,
		},
	}
	for _, e := range in.Despesas.Extras {
		declaracao.Despesas.Extras = append(declaracao.Despesas.Extras, entity.DespesaExtra{
			Descricao:      e.Descricao,
			Valor:          e.Valor,
			CompoeBaseICMS: e.CompoeBaseICMS,
		})
	}
	for _, a := range in.Adicoes {
		adicao := entity.Adicao{
			Numero:      a.Numero,
			NCM:         a.NCM,
			ValorReais:  a.ValorReais,
			PesoLiquido: a.PesoLiquido,
			Tributos: entity.TributosAdicao{
				II:     toTributo(a.Tributos.II),
				IPI:    toTributo(a.Tributos.IPI),
				PIS:    toTributo(a.Tributos.PIS),
				COFINS: toTributo(a.Tributos.COFINS),
			},
		}
		for _, p := range a.Produtos {
			adicao.Produtos = append(adicao.Produtos, entity.Produto{
				Descricao:     p.Descricao,
				Quantidade:    p.Quantidade,
				ValorUnitario: p.ValorUnitario,
			})
		}
		declaracao.Adicoes = append(declaracao.Adicoes, adicao)
	}
	return declaracao
}

func toTributo(t *dto.TributoRequest) *entity.TributoInformado {
	if t == nil {
		return nil
	}
	return &entity.TributoInformado{Aliquota: t.Aliquota, ValorDevido: t.ValorDevido}
}

func toResponse(registro *entity.CalculoRegistro) *dto.CalculoResponse {
	r := registro.Resultado
	resp := &dto.CalculoResponse{
		ID:             registro.ID,
		NumeroDI:       r.NumeroDI,
		UFDestino:      r.UFDestino,
		NumeroAdicoes:  r.NumeroAdicoes,
		ValorAduaneiro: r.ValorAduaneiro,
		DespesasTotais: r.DespesasTotais,
		TotalII:        r.TotalII,
		TotalIPI:       r.TotalIPI,
		TotalPIS:       r.TotalPIS,
		TotalCOFINS:    r.TotalCOFINS,
		TotalICMS:      r.TotalICMS,
		TotalImpostos:  r.TotalImpostos,
		CustoTotal:     r.CustoTotal,
		Validacao:      toValidacaoResponse(r.Validacao.OK, r.Validacao.Tolerancia, r.Validacao.Tributos),
		CreatedAt:      registro.CreatedAt.Format(time.RFC3339),
	}
	for i := range r.Adicoes {
		resp.Adicoes = append(resp.Adicoes, toAdicaoResponse(&r.Adicoes[i]))
	}
	return resp
}

func toAdicaoResponse(calc *entity.CalculoAdicao) dto.CalculoAdicaoResponse {
	resp := dto.CalculoAdicaoResponse{
		Numero:        calc.AdicaoNumero,
		NCM:           calc.NCM,
		ValorReais:    calc.ValorReais,
		II:            toTributoResponse(calc.II),
		IPI:           toTributoResponse(calc.IPI),
		PIS:           toTributoResponse(calc.PIS),
		COFINS:        toTributoResponse(calc.COFINS),
		ICMS:          toICMSResponse(calc.ICMS),
		Despesas:      toDespesasResponse(calc.Despesas),
		TotalImpostos: calc.TotalImpostos,
		CustoTotal:    calc.CustoTotal,
		CustoPorKg:    calc.CustoPorKg,
		Validacao:     toValidacaoResponse(calc.Validacao.OK, calc.Validacao.Tolerancia, calc.Validacao.Tributos),
	}
	if calc.Beneficio != nil {
		resp.Beneficio = &dto.BeneficioResponse{
			Tipo:            string(calc.Beneficio.Tipo),
			Percentual:      calc.Beneficio.Percentual,
			AliquotaEfetiva: calc.Beneficio.AliquotaEfetiva,
			Codigo:          calc.Beneficio.Codigo,
			ICMSOriginal:    calc.Beneficio.ICMSOriginal,
			ICMSLiquido:     calc.Beneficio.ICMSLiquido,
			Economia:        calc.Beneficio.Economia,
			EconomiaDeFluxo: calc.Beneficio.EconomiaDeFluxo,
			Motivo:          calc.Beneficio.Motivo,
		}
	}
	for i := range calc.Itens {
		item := &calc.Itens[i]
		resp.Itens = append(resp.Itens, dto.CalculoItemResponse{
			Indice:        item.Indice,
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorItem:     item.ValorItem,
			II:            toTributoResponse(item.II),
			IPI:           toTributoResponse(item.IPI),
			PIS:           toTributoResponse(item.PIS),
			COFINS:        toTributoResponse(item.COFINS),
			ICMS:          toICMSResponse(item.ICMS),
			Despesas:      toDespesasResponse(item.Despesas),
			CustoTotal:    item.CustoTotal,
		})
	}
	return resp
}

func toTributoResponse(t entity.TributoCalculado) dto.TributoResponse {
	return dto.TributoResponse{Aliquota: t.Aliquota, BaseCalculo: t.BaseCalculo, ValorDevido: t.ValorDevido}
}

func toICMSResponse(icms entity.ICMSCalculado) dto.ICMSResponse {
	return dto.ICMSResponse{
		Aliquota:     icms.Aliquota,
		BaseAntes:    icms.BaseAntes,
		BaseFinal:    icms.BaseFinal,
		FatorDivisao: icms.FatorDivisao,
		ValorDevido:  icms.ValorDevido,
	}
}

func toDespesasResponse(d entity.DespesasRateadas) dto.DespesasRateadasResponse {
	return dto.DespesasRateadasResponse{
		Automaticas:       d.Automaticas,
		ExtrasTributaveis: d.ExtrasTributaveis,
		ExtrasCustos:      d.ExtrasCustos,
	}
}

func toValidacaoResponse(ok bool, tolerancia decimal.Decimal, tributos []entity.ValidacaoTributo) dto.ValidacaoResponse {
	resp := dto.ValidacaoResponse{OK: ok, Tolerancia: tolerancia}
	for _, v := range tributos {
		resp.Tributos = append(resp.Tributos, dto.ValidacaoTributoResponse{
			Tributo:          v.Tributo,
			Esperado:         v.Esperado,
			Calculado:        v.Calculado,
			Diferenca:        v.Diferenca,
			Percentual:       v.Percentual,
			DentroTolerancia: v.DentroTolerancia,
		})
	}
	return resp
}
