// Package precificacao deriva preços de venda a partir do custo de
// desembaraço de um cálculo persistido.
package precificacao

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/expertzy/importa-precifica-api/internal/application/dto"
	"github.com/expertzy/importa-precifica-api/internal/domain/entity"
	"github.com/expertzy/importa-precifica-api/internal/domain/repository"
	"github.com/expertzy/importa-precifica-api/pkg/logger"
)

// Margens padrão quando a requisição não informa nenhuma.
var (
	MargemMinimaPadrao   = decimal.NewFromInt(15)
	MargemSugeridaPadrao = decimal.NewFromInt(30)
)

var cem = decimal.NewFromInt(100)

// UseCase caso de uso de precificação sobre cálculos já gravados.
type UseCase struct {
	repo repository.CalculoRepository
	log  *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.CalculoRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Precificar carrega o cálculo e aplica as margens sobre o custo unitário de
// cada item. Preço = custo × (1 + margem/100); o custo unitário é o custo do
// item (base final do ICMS mais despesas fora da base) dividido pela
// quantidade.
func (uc *UseCase) Precificar(ctx context.Context, calculoID string, in dto.PrecificarRequest) (*dto.PrecificacaoResponse, error) {
	registro, err := uc.repo.GetByID(ctx, calculoID)
	if err != nil {
		return nil, err
	}

	minima := in.MargemMinima
	if !minima.IsPositive() {
		minima = MargemMinimaPadrao
	}
	sugerida := in.MargemSugerida
	if !sugerida.IsPositive() {
		sugerida = MargemSugeridaPadrao
	}

	fatorMinimo := cem.Add(minima).Div(cem)
	fatorSugerido := cem.Add(sugerida).Div(cem)

	resp := &dto.PrecificacaoResponse{
		CalculoID:      registro.ID,
		NumeroDI:       registro.NumeroDI,
		MargemMinima:   minima,
		MargemSugerida: sugerida,
		CustoTotal:     registro.CustoTotal,
	}
	for i := range registro.Resultado.Adicoes {
		adicao := &registro.Resultado.Adicoes[i]
		precificada := dto.PrecificacaoAdicaoResponse{Numero: adicao.AdicaoNumero, NCM: adicao.NCM}
		for j := range adicao.Itens {
			precificada.Itens = append(precificada.Itens, precificarItem(&adicao.Itens[j], fatorMinimo, fatorSugerido))
		}
		resp.Adicoes = append(resp.Adicoes, precificada)
	}

	uc.log.Info().
		Str("calculo_id", registro.ID).
		Str("numero_di", registro.NumeroDI).
		Str("margem_minima", minima.StringFixed(2)).
		Str("margem_sugerida", sugerida.StringFixed(2)).
		Msg("precificação gerada")

	return resp, nil
}

func precificarItem(item *entity.CalculoItem, fatorMinimo, fatorSugerido decimal.Decimal) dto.PrecificacaoItemResponse {
	custoUnitario := item.CustoTotal
	if item.Quantidade.IsPositive() {
		custoUnitario = item.CustoTotal.Div(item.Quantidade)
	}
	return dto.PrecificacaoItemResponse{
		Indice:             item.Indice,
		Descricao:          item.Descricao,
		Quantidade:         item.Quantidade,
		CustoTotal:         item.CustoTotal,
		CustoUnitario:      custoUnitario,
		PrecoVendaMinimo:   custoUnitario.Mul(fatorMinimo),
		PrecoVendaSugerido: custoUnitario.Mul(fatorSugerido),
	}
}
