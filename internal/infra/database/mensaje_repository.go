package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

type MensajeRepository struct {
	DB *sql.DB
}

func NewMensajeRepository(db *sql.DB) *MensajeRepository {
	return &MensajeRepository{DB: db}
}

func (r *MensajeRepository) Guardar(ctx context.Context, m *entity.MensajeEnviado) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.EnviadoAt.IsZero() {
		m.EnviadoAt = time.Now()
	}

	query := `
		INSERT INTO mensajes_enviados
			(id, cita_id, nombre_paciente, telefono, mensaje, plantilla_id, fecha_cita, medico, sede, enviado_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID,
		m.CitaID,
		m.NombrePaciente,
		m.Telefono,
		m.Mensaje,
		m.PlantillaID,
		m.FechaCita,
		m.Medico,
		m.Sede,
		m.EnviadoAt,
	)
	if err != nil {
		log.Printf("❌ Error al guardar mensaje enviado (cita %d): %v", m.CitaID, err)
		return err
	}

	return nil
}

func (r *MensajeRepository) ListarRecientes(ctx context.Context, limite int) ([]entity.MensajeEnviado, error) {
	if limite <= 0 {
		limite = 50
	}

	query := `
		SELECT id, cita_id, nombre_paciente, telefono, mensaje, plantilla_id, fecha_cita, medico, sede, enviado_at
		FROM mensajes_enviados
		ORDER BY enviado_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limite)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mensajes []entity.MensajeEnviado
	for rows.Next() {
		var m entity.MensajeEnviado
		if err := rows.Scan(
			&m.ID,
			&m.CitaID,
			&m.NombrePaciente,
			&m.Telefono,
			&m.Mensaje,
			&m.PlantillaID,
			&m.FechaCita,
			&m.Medico,
			&m.Sede,
			&m.EnviadoAt,
		); err != nil {
			return nil, err
		}
		mensajes = append(mensajes, m)
	}

	return mensajes, rows.Err()
}
