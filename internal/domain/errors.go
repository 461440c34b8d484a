package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrDeclaracaoSemAdicoes = errors.New("declaração sem adições válidas para cálculo")
	ErrTributoAusente       = errors.New("tributo obrigatório ausente na adição")
	ErrAliquotaInvalida     = errors.New("alíquota ICMS ausente ou inválida")
	ErrRateioIndefinido     = errors.New("rateio indefinido: valor de referência zero ou ausente")
)
