package repository

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

//go:generate mockgen -source=vendor.go -destination=mocks/vendor_mock.go -package=mocks
//go:generate mockgen -source=order.go -destination=mocks/order_mock.go -package=mocks
//go:generate mockgen -source=product.go -destination=mocks/product_mock.go -package=mocks
//go:generate mockgen -source=category.go -destination=mocks/category_mock.go -package=mocks
//go:generate mockgen -source=stock_alert.go -destination=mocks/stock_alert_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound é retornado por updates e deletes que não afetaram nenhuma linha
var ErrNotFound = errors.New("registro não encontrado")
