package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MensajeEnviado es el registro que queda en base de datos por cada
// recordatorio entregado con éxito. Los fallidos no se persisten.
type MensajeEnviado struct {
	ID             string    `json:"id"`
	CitaID         int64     `json:"cita_id"`
	NombrePaciente string    `json:"nombre_paciente"`
	Telefono       string    `json:"telefono"`
	Mensaje        string    `json:"mensaje"`
	PlantillaID    string    `json:"plantilla_id"`
	FechaCita      string    `json:"fecha_cita"`
	Medico         string    `json:"medico"`
	Sede           string    `json:"sede"`
	EnviadoAt      time.Time `json:"enviado_at"`
}

type MensajeRepository interface {
	Guardar(ctx context.Context, m *MensajeEnviado) error
	ListarRecientes(ctx context.Context, limite int) ([]MensajeEnviado, error)
}

// NewMensajeEnviado crea el registro con ID y timestamp
func NewMensajeEnviado(citaID int64, nombre, telefono, mensaje, plantillaID, fechaCita, medico, sede string) *MensajeEnviado {
	return &MensajeEnviado{
		ID:             uuid.New().String(),
		CitaID:         citaID,
		NombrePaciente: nombre,
		Telefono:       telefono,
		Mensaje:        mensaje,
		PlantillaID:    plantillaID,
		FechaCita:      fechaCita,
		Medico:         medico,
		Sede:           sede,
		EnviadoAt:      time.Now(),
	}
}
