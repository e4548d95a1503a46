package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://graph.facebook.com/v18.0"

type Client struct {
	HTTPClient  *http.Client
	AccessToken string
	PhoneID     string
	BaseURL     string
}

func NewClient(accessToken, phoneID string) *Client {
	return &Client{
		// Timeout acota un envío colgado: sin esto un hang de la API de
		// Meta frena el lote entero.
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		AccessToken: accessToken,
		PhoneID:     phoneID,
		BaseURL:     defaultBaseURL,
	}
}

// EnviarPlantilla envía un mensaje de plantilla con parámetros posicionales
// de texto y devuelve el message id aceptado por la API.
func (c *Client) EnviarPlantilla(ctx context.Context, telefono, plantilla string, parametros []string) (string, error) {
	if c.AccessToken == "" || c.PhoneID == "" {
		return "", fmt.Errorf("whatsapp no configurado: faltan ACCESS_TOKEN o PHONE_ID")
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                telefono,
		"type":              "template",
		"template": map[string]interface{}{
			"name": plantilla,
			"language": map[string]string{
				"code": "es",
			},
			"components": []map[string]interface{}{
				{
					"type":       "body",
					"parameters": parametrosAPI(parametros),
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error al serializar payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error al crear request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error al llamar la API de WhatsApp: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result envioResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("respuesta no interpretable (status %d): %w", resp.StatusCode, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("whatsapp: %s (code: %d)", result.Error.Message, result.Error.Code)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, string(respBody))
	}

	if len(result.Messages) == 0 {
		return "", fmt.Errorf("whatsapp no devolvió message id")
	}

	return result.Messages[0].ID, nil
}

func parametrosAPI(params []string) []map[string]string {
	result := make([]map[string]string, 0, len(params))
	for _, param := range params {
		result = append(result, map[string]string{
			"type": "text",
			"text": param,
		})
	}
	return result
}
