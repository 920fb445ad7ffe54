package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrMissingVendor    = errors.New("vendedor não informado")
	ErrVendorNotFound   = errors.New("vendedor não encontrado")
	ErrLoadOrders       = errors.New("erro ao carregar pedidos do vendedor")
	ErrLoadProducts     = errors.New("erro ao carregar produtos do vendedor")
	ErrLoadVendor       = errors.New("erro ao carregar vendedor")
	ErrInvalidStockType = errors.New("tipo de estoque inválido")
	ErrExport           = errors.New("erro ao gerar planilha")
	ErrLoadStockAlerts  = errors.New("erro ao carregar alertas de estoque")
)

// DashboardError carrega o código de API junto do erro de origem
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(baseErr error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
