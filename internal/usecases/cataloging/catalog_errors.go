package cataloging

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound      = errors.New("categoria não encontrada")
	ErrCategoryAlreadyExists = errors.New("categoria já existe")
	ErrProductNotFound       = errors.New("produto não encontrado")
	ErrSizeNotFound          = errors.New("tamanho não encontrado")

	ErrInvalidRequest  = errors.New("requisição inválida")
	ErrInvalidImage    = errors.New("imagem inválida")
	ErrInvalidQuantity = errors.New("quantidade inválida")
	ErrInvalidPrice    = errors.New("preço inválido")

	ErrImageUpload       = errors.New("erro ao enviar imagem")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CatalogError é um erro com contexto adicional para categorias e produtos
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details any    // Mensagem ou campos inválidos
}

func (e *CatalogError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(baseErr error, code string, details any) *CatalogError {
	return &CatalogError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
