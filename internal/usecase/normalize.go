package usecase

import (
	"fmt"

	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

// Normalizar proyecta una cita cruda a los campos que consume la plantilla.
// Es total: nunca falla, los datos degradados salen como avisos. Tipo y
// entidad vacíos caen a los defaults del consultorio.
func Normalizar(cita entity.Cita) (entity.CitaProcesada, []string) {
	var avisos []string

	fecha := FormatFecha(cita.Requerida)
	if fecha.Aviso != "" {
		avisos = append(avisos, fmt.Sprintf("cita %d: %s", cita.ID, fecha.Aviso))
	}

	hora := FormatHora(cita.Hora, cita.AmPm)
	if hora.Aviso != "" {
		avisos = append(avisos, fmt.Sprintf("cita %d: %s", cita.ID, hora.Aviso))
	}

	tipo := cita.Tipo
	if tipo == "" {
		tipo = "CONSULTA"
	}

	entidad := cita.Entidad
	if entidad == "" {
		entidad = "PARTICULAR"
	}

	procesada := entity.CitaProcesada{
		CitaID:      cita.ID,
		Telefono:    ExtraerPrimerTelefono(cita.Telefono),
		Nombre:      cita.Nombre,
		Fecha:       fecha.Valor,
		Hora:        hora.Valor,
		Medico:      cita.Medico,
		Sede:        cita.Sede,
		Consultorio: cita.Consultorio,
		Tipo:        tipo,
		Entidad:     entidad,
		Observacion: LimpiarObservacion(cita.Observacion),
	}

	return procesada, avisos
}
