// Package docgen cliente del servicio remoto que recibe la simulación en JSON y devuelve el PDF.
package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jhoicas/Simulador-api/internal/application/quote"
	"github.com/jhoicas/Simulador-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa PDFGenerator.
var _ quote.PDFGenerator = (*Client)(nil)

const maxPDFBytes = 32 << 20

// Client POST del documento al servicio remoto; reintenta fallas transitorias (red o 5xx).
type Client struct {
	url         string
	maxAttempts int
	interval    time.Duration
	maxBytes    int64
	httpClient  *http.Client
}

// NewClient construye el cliente. maxAttempts se limita a 1..2.
func NewClient(url string, timeout time.Duration, maxAttempts int) *Client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if maxAttempts > 2 {
		maxAttempts = 2
	}
	return &Client{
		url:         url,
		maxAttempts: maxAttempts,
		interval:    500 * time.Millisecond,
		maxBytes:    maxPDFBytes,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// WithRetryInterval cambia la espera inicial entre intentos.
func (c *Client) WithRetryInterval(d time.Duration) *Client {
	c.interval = d
	return c
}

// WithMaxBytes cambia el tamaño máximo aceptado para el PDF.
func (c *Client) WithMaxBytes(n int64) *Client {
	c.maxBytes = n
	return c
}

// GenerateQuotePDF envía el documento y devuelve los bytes del PDF.
func (c *Client) GenerateQuotePDF(ctx context.Context, doc *quote.Document) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docgen: serializar documento: %w", err)
	}

	var out []byte
	op := func() error {
		data, err := c.post(ctx, body)
		if err != nil {
			return err
		}
		out = data
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.interval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentService, err)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("docgen: crear request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, backoff.Permanent(err)
		}
		return nil, fmt.Errorf("docgen: llamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("docgen: leer respuesta: %w", err)
	}
	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("docgen: status %d", resp.StatusCode)
	case resp.StatusCode == http.StatusOK && int64(len(data)) > c.maxBytes:
		return nil, backoff.Permanent(fmt.Errorf("docgen: PDF supera %d bytes", c.maxBytes))
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("docgen: status %d: %s", resp.StatusCode, truncate(string(data), 200)))
	case len(data) == 0:
		return nil, backoff.Permanent(fmt.Errorf("docgen: respuesta vacía"))
	}
	return data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
