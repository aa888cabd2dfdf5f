package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identidade é o conjunto de dados do usuário carregado dentro do token. As
// permissões viajam no próprio token para que o middleware decida sem
// consultar o banco a cada requisição.
type Identidade struct {
	UserID     string   `json:"user_id"`
	Username   string   `json:"username"`
	Nome       string   `json:"nome"`
	Filial     string   `json:"filial"`
	Permissoes []string `json:"permissoes"`
}

// Claims inclui os claims padrão JWT mais a identidade da aplicação.
type Claims struct {
	jwt.RegisteredClaims
	Identidade
}

// Generate gera um token HS256 assinado contendo a identidade.
func Generate(secret string, id Identidade, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Identidade: id,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve a identidade embutida.
// Retorna erro se o token é inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (*Identidade, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &claims.Identidade, nil
}
