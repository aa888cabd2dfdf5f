package usecase

import (
	"context"

	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

// Store agrupa os repositórios que uma transação pode tocar. Dentro de um
// TxRunner.Run todos apontam para a mesma transação: a mutação e suas
// entradas de auditoria são confirmadas (ou desfeitas) juntas.
type Store struct {
	Ativos    repository.AtivoRepository
	Celulares repository.CelularRepository
	Softwares repository.SoftwareRepository
	Emails    repository.EmailRepository
	Filiais   repository.FilialRepository
	Usuarios  repository.UsuarioRepository
	Logs      repository.AuditLogRepository
}

// TxRunner executa fn dentro de uma transação, com os repositórios do Store
// atados a ela. Erro de fn desfaz tudo — uma validação que falha nunca deixa
// entrada de auditoria para trás.
type TxRunner interface {
	Run(ctx context.Context, fn func(Store) error) error
}
