// Package imagehost envia e remove imagens de produtos e categorias no serviço de hospedagem
// (API compatível com Cloudinary).
package imagehost

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Upload(ctx context.Context, data []byte, filename string) (*domain.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

type imageHostClient struct {
	httpClient *http.Client
	config     config.ImageHost
	now        func() time.Time
}

func NewClient(cfg config.ImageHost) Client {
	return &imageHostClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
		now:    time.Now,
	}
}
