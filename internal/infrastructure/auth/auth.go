package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
)

// ErrInvalidToken indica token ausente, malformado, expirado ou recusado pelo Supabase
var ErrInvalidToken = errors.New("invalid access token")

// Identity é o usuário autenticado de uma requisição
type Identity struct {
	UserID string
	Email  string
}

// Verifier valida um access token do Supabase
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Claims são as claims que o Supabase Auth coloca no access token
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier confere a assinatura localmente com o JWT secret do projeto
type JWTVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), now: time.Now}
}

func (v *JWTVerifier) Verify(ctx context.Context, raw string) (*Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// SupabaseVerifier pergunta ao Supabase Auth quem é o dono do token
type SupabaseVerifier struct {
	auth gotrue.Client
}

func NewSupabaseVerifier(url, anonKey string) (*SupabaseVerifier, error) {
	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &SupabaseVerifier{auth: client.Auth}, nil
}

func (v *SupabaseVerifier) Verify(ctx context.Context, raw string) (*Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}

	user, err := v.auth.WithToken(raw).GetUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &Identity{UserID: user.ID.String(), Email: user.Email}, nil
}

// NewVerifier prefere a verificação local quando o secret está configurado
func NewVerifier(jwtSecret, supabaseURL, anonKey string) (Verifier, error) {
	if jwtSecret != "" {
		return NewJWTVerifier(jwtSecret), nil
	}
	return NewSupabaseVerifier(supabaseURL, anonKey)
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
