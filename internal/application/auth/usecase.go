package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/refricriltecno/inventario-ti/internal/application/changefeed"
	"github.com/refricriltecno/inventario-ti/internal/application/dto"
	"github.com/refricriltecno/inventario-ti/internal/domain"
	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
	"github.com/refricriltecno/inventario-ti/internal/domain/repository"
	"github.com/refricriltecno/inventario-ti/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação e administração de usuários.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
	feed     *changefeed.Feed
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig, feed *changefeed.Feed) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg, feed: feed}
}

// Register cria um usuário: faz o hash bcrypt da senha e persiste.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" || in.Nome == "" || in.Filial == "" {
		return nil, fmt.Errorf("username, password, nome e filial são obrigatórios: %w", domain.ErrValidacao)
	}
	existente, err := uc.usuarios.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("usuário %q já existe: %w", in.Username, domain.ErrDuplicado)
	}
	for _, p := range in.Permissoes {
		switch p {
		case entity.PermView, entity.PermEdit, entity.PermDelete, entity.PermAdmin:
		default:
			return nil, fmt.Errorf("permissão %q não reconhecida: %w", p, domain.ErrValidacao)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	permissoes := in.Permissoes
	if len(permissoes) == 0 {
		permissoes = []string{entity.PermView}
	}
	agora := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     in.Username,
		SenhaHash:    string(hash),
		Nome:         in.Nome,
		Email:        in.Email,
		Filial:       in.Filial,
		Permissoes:   permissoes,
		Ativo:        true,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
	if err := uc.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoUsuarios)
	return toUsuarioResponse(u), nil
}

// Login verifica username/senha, registra o último acesso e devolve o token
// com a identidade e o conjunto de permissões nos claims.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	// Mesma resposta para usuário inexistente, inativo ou senha errada.
	if u == nil || !u.Ativo {
		return nil, fmt.Errorf("usuário ou senha inválidos: %w", domain.ErrNaoAutorizado)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("usuário ou senha inválidos: %w", domain.ErrNaoAutorizado)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identidade{
		UserID:     u.ID,
		Username:   u.Username,
		Nome:       u.Nome,
		Filial:     u.Filial,
		Permissoes: u.Permissoes,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	u.UltimoLogin = &agora
	u.AtualizadoEm = agora
	if err := uc.usuarios.Update(ctx, u); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		Usuario:     *toUsuarioResponse(u),
	}, nil
}

// ListUsuarios lista todos os usuários (admin).
func (uc *AuthUseCase) ListUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

// ListFuncionarios devolve os nomes dos usuários de uma filial, para
// preencher seletores de responsável.
func (uc *AuthUseCase) ListFuncionarios(ctx context.Context, filial string) ([]string, error) {
	list, err := uc.usuarios.ListByFilial(ctx, filial)
	if err != nil {
		return nil, err
	}
	nomes := make([]string, 0, len(list))
	for _, u := range list {
		nomes = append(nomes, u.Nome)
	}
	return nomes, nil
}

// UpdateUsuario atualiza permissões e dados cadastrais de um usuário (admin).
func (uc *AuthUseCase) UpdateUsuario(ctx context.Context, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("usuário %s: %w", id, domain.ErrNaoEncontrado)
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Filial != nil {
		u.Filial = *in.Filial
	}
	if in.Permissoes != nil {
		for _, p := range *in.Permissoes {
			switch p {
			case entity.PermView, entity.PermEdit, entity.PermDelete, entity.PermAdmin:
			default:
				return nil, fmt.Errorf("permissão %q não reconhecida: %w", p, domain.ErrValidacao)
			}
		}
		u.Permissoes = *in.Permissoes
	}
	if in.Ativo != nil {
		u.Ativo = *in.Ativo
	}
	u.AtualizadoEm = time.Now()
	if err := uc.usuarios.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.feed.Bump(changefeed.ColecaoUsuarios)
	return toUsuarioResponse(u), nil
}

// DeleteUsuario remove um usuário (admin).
func (uc *AuthUseCase) DeleteUsuario(ctx context.Context, id string) error {
	u, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("usuário %s: %w", id, domain.ErrNaoEncontrado)
	}
	if err := uc.usuarios.Delete(ctx, u.ID); err != nil {
		return err
	}
	uc.feed.Bump(changefeed.ColecaoUsuarios)
	return nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:          u.ID,
		Username:    u.Username,
		Nome:        u.Nome,
		Email:       u.Email,
		Filial:      u.Filial,
		Permissoes:  u.Permissoes,
		Ativo:       u.Ativo,
		UltimoLogin: u.UltimoLogin,
	}
}
