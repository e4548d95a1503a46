package usecase

import "context"

// WhatsAppSender es el contrato de envío: una plantilla aprobada, un
// teléfono E.164 y el vector posicional de parámetros. Devuelve el id del
// mensaje aceptado por la API.
type WhatsAppSender interface {
	EnviarPlantilla(ctx context.Context, telefono, plantilla string, parametros []string) (string, error)
}
