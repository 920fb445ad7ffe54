package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrVendorNotFound      = errors.New("vendedor não encontrado")
	ErrVendorAlreadyExists = errors.New("email já cadastrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidRequest      = errors.New("requisição inválida")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrTokenGeneration   = errors.New("erro ao gerar token de autenticação")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	VendorID string // Vendedor envolvido (quando aplicável)
	Details  any    // Detalhes adicionais (mensagem ou campos inválidos)
}

func (e *AuthError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica se o erro vem de email ou senha incorretos
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrVendorNotFound)
}

func NewAuthError(baseErr error, code string, details any) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewVendorAuthError(baseErr error, code string, vendorID string, details any) *AuthError {
	return &AuthError{
		Err:      baseErr,
		Code:     code,
		VendorID: vendorID,
		Details:  details,
	}
}
