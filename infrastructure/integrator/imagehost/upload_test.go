package imagehost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
)

func newTestClient(serverURL string) *imageHostClient {
	return &imageHostClient{
		httpClient: http.DefaultClient,
		config: config.ImageHost{
			URL:          serverURL,
			CloudName:    "loja",
			APIKey:       "chave",
			APISecret:    "segredo",
			UploadPreset: "vendor_uploads",
		},
		now: func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestUpload(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, url, publicID string, err error)
	}{
		{
			name: "Upload com sucesso",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/loja/image/upload", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)

				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Equal(t, "vendor_uploads", r.FormValue("upload_preset"))

				file, header, err := r.FormFile("file")
				require.NoError(t, err)
				defer file.Close()
				content, _ := io.ReadAll(file)
				assert.Equal(t, "camisa.png", header.Filename)
				assert.Equal(t, "conteudo", string(content))

				_, _ = w.Write([]byte(`{"secure_url":"https://cdn/camisa.png","public_id":"abc123"}`))
			},
			validate: func(t *testing.T, url, publicID string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "https://cdn/camisa.png", url)
				assert.Equal(t, "abc123", publicID)
			},
		},
		{
			name: "Serviço retorna erro",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
			},
			validate: func(t *testing.T, url, publicID string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrImageHostRequest))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			image, err := newTestClient(server.URL).Upload(context.Background(), []byte("conteudo"), "camisa.png")

			if image == nil {
				tt.validate(t, "", "", err)
				return
			}
			tt.validate(t, image.URL, image.PublicID, err)
		})
	}
}

func TestDestroy(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		wantErr bool
	}{
		{name: "Imagem removida", result: "ok"},
		{name: "Imagem já inexistente", result: "not found"},
		{name: "Resultado inesperado", result: "error", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/loja/image/destroy", r.URL.Path)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "abc123", r.PostFormValue("public_id"))
				assert.Equal(t, "1700000000", r.PostFormValue("timestamp"))
				assert.Equal(t, "chave", r.PostFormValue("api_key"))
				assert.Equal(t, sign(map[string]string{"public_id": "abc123", "timestamp": "1700000000"}, "segredo"), r.PostFormValue("signature"))

				_, _ = w.Write([]byte(`{"result":"` + tt.result + `"}`))
			}))
			defer server.Close()

			err := newTestClient(server.URL).Destroy(context.Background(), "abc123")

			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrImageHostRequest))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSign(t *testing.T) {
	// sha1("public_id=abc&timestamp=1segredo")
	first := sign(map[string]string{"timestamp": "1", "public_id": "abc"}, "segredo")
	second := sign(map[string]string{"public_id": "abc", "timestamp": "1"}, "segredo")

	assert.Len(t, first, 40)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, sign(map[string]string{"public_id": "abc", "timestamp": "1"}, "outro"))
}
