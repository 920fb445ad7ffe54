package imagehost

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

var ErrImageHostRequest = errors.New("falha na comunicação com o serviço de imagens")

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Upload envia a imagem usando o upload preset configurado (upload não assinado)
func (c *imageHostClient) Upload(ctx context.Context, data []byte, filename string) (*domain.Image, error) {
	endpoint, err := c.endpoint("upload")
	if err != nil {
		return nil, err
	}

	if filename == "" {
		filename = "image"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.config.UploadPreset); err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var response uploadResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	return &domain.Image{URL: response.SecureURL, PublicID: response.PublicID}, nil
}

// Destroy remove a imagem. A requisição é assinada com api_secret.
func (c *imageHostClient) Destroy(ctx context.Context, publicID string) error {
	endpoint, err := c.endpoint("destroy")
	if err != nil {
		return err
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.config.APIKey)
	form.Set("signature", sign(map[string]string{"public_id": publicID, "timestamp": timestamp}, c.config.APISecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var response destroyResponse
	if err := c.do(req, &response); err != nil {
		return err
	}

	// "not found" também é aceito: a imagem já não existe
	if response.Result != "ok" && response.Result != "not found" {
		return errors.Wrapf(ErrImageHostRequest, "remoção retornou %q", response.Result)
	}

	return nil
}

func (c *imageHostClient) endpoint(action string) (string, error) {
	base, err := url.Parse(c.config.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	base.Path = path.Join(base.Path, c.config.CloudName, "image", action)
	return base.String(), nil
}

func (c *imageHostClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(ErrImageHostRequest, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Wrapf(ErrImageHostRequest, "status %s: %s", resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// sign gera a assinatura sha1 dos parâmetros em ordem alfabética seguidos do segredo
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
