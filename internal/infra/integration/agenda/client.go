package agenda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

// Client consume la API de agendamiento del consultorio. Solo lectura:
// este servicio nunca modifica citas.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
		Token:      token,
	}
}

// CitasDelDia trae las citas agendadas para una fecha (YYYY-MM-DD) y sede.
// Sede vacía trae todas las sedes. No se valida el esquema de cada cita:
// los elementos malformados salen degradados, no cortan el lote.
func (c *Client) CitasDelDia(ctx context.Context, fecha, sede string) ([]entity.Cita, error) {
	endpoint := fmt.Sprintf("%s/citas?%s", c.BaseURL, url.Values{
		"fecha": {fecha},
		"sede":  {sede},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error al crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al consultar la agenda: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agenda api status %d: %s", resp.StatusCode, string(body))
	}

	var result citasResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("respuesta de agenda no interpretable: %w", err)
	}

	return result.Data, nil
}
