package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado   = errors.New("recurso não encontrado")
	ErrValidacao       = errors.New("entrada inválida")
	ErrDuplicado       = errors.New("recurso duplicado")
	ErrConflito        = errors.New("conflito com o estado atual")
	ErrPermissaoNegada = errors.New("permissão negada")
	ErrNaoAutorizado   = errors.New("não autorizado")
)
