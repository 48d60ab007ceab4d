// Package catalogapi adaptador de lectura de la API remota de catálogo
// (equipos, marcas y tipos de equipo, cada uno en su endpoint).
package catalogapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*Client)(nil)

const (
	equipmentPath  = "/equipamentos/"
	brandsPath     = "/marcaEquipamento/"
	categoriesPath = "/tipoEquipamento/"

	maxBodyBytes = 8 << 20
)

// Client implementa CatalogRepository con la API REST del catálogo.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout <= 0 usa 15 s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListEquipment GET /equipamentos/.
func (c *Client) ListEquipment(ctx context.Context) ([]*entity.Equipment, error) {
	var out []*entity.Equipment
	err := c.get(ctx, equipmentPath, func(r io.Reader) error {
		var err error
		out, err = DecodeEquipment(r)
		return err
	})
	return out, err
}

// ListBrands GET /marcaEquipamento/.
func (c *Client) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	var out []*entity.Brand
	err := c.get(ctx, brandsPath, func(r io.Reader) error {
		var err error
		out, err = DecodeBrands(r)
		return err
	})
	return out, err
}

// ListCategories GET /tipoEquipamento/.
func (c *Client) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	err := c.get(ctx, categoriesPath, func(r io.Reader) error {
		var err error
		out, err = DecodeCategories(r)
		return err
	})
	return out, err
}

func (c *Client) get(ctx context.Context, path string, decode func(io.Reader) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catálogo: crear request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("catálogo: timeout o cancelación en %s: %w", path, ctx.Err())
		}
		return fmt.Errorf("catálogo: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catálogo: GET %s respondió %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return decode(io.LimitReader(resp.Body, maxBodyBytes))
}
