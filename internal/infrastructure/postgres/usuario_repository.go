package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColunas = `id, username, senha_hash, nome, email, filial, permissoes, ativo,
	ultimo_login, criado_em, atualizado_em`

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL (pool ou tx).
// Permissões vivem numa coluna text[].
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Username, u.SenhaHash, u.Nome, u.Email, u.Filial, u.Permissoes, u.Ativo,
		u.UltimoLogin, u.CriadoEm, u.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanRow(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.Username, &u.SenhaHash, &u.Nome, &u.Email, &u.Filial, &u.Permissoes, &u.Ativo,
		&u.UltimoLogin, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}

// GetByID obtém um usuário por ID. Retorna (nil, nil) se não existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+usuarioColunas+` FROM usuarios WHERE id = $1`, id))
}

// GetByUsername obtém um usuário pelo login. Retorna (nil, nil) se não existe.
func (r *UsuarioRepo) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.scanRow(r.q.QueryRow(ctx, `SELECT `+usuarioColunas+` FROM usuarios WHERE username = $1`, username))
}

// Update atualiza um usuário existente.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET username = $2, senha_hash = $3, nome = $4, email = $5, filial = $6,
			permissoes = $7, ativo = $8, ultimo_login = $9, atualizado_em = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Username, u.SenhaHash, u.Nome, u.Email, u.Filial,
		u.Permissoes, u.Ativo, u.UltimoLogin, u.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista todos os usuários ordenados por username.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	return r.list(ctx, `SELECT `+usuarioColunas+` FROM usuarios ORDER BY username`)
}

// ListByFilial lista usuários de uma filial.
func (r *UsuarioRepo) ListByFilial(ctx context.Context, filial string) ([]*entity.Usuario, error) {
	return r.list(ctx, `SELECT `+usuarioColunas+` FROM usuarios WHERE filial = $1 ORDER BY username`, filial)
}

func (r *UsuarioRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Username, &u.SenhaHash, &u.Nome, &u.Email, &u.Filial, &u.Permissoes, &u.Ativo,
			&u.UltimoLogin, &u.CriadoEm, &u.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove fisicamente um usuário por ID.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
