package usecase

import (
	"strings"
	"time"
)

// ValidarSolicitudEnvio revisa la solicitud de una corrida antes de
// encolarla. La sede es opcional (vacía = todas las sedes).
func ValidarSolicitudEnvio(fecha string) error {
	if strings.TrimSpace(fecha) == "" {
		return &DomainError{
			Code:    "FECHA_REQUERIDA",
			Message: "fecha es obligatoria (YYYY-MM-DD)",
		}
	}

	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return &DomainError{
			Code:    "FECHA_INVALIDA",
			Message: "fecha inválida, se espera YYYY-MM-DD",
		}
	}

	return nil
}
