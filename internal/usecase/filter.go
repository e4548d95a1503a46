package usecase

import "github.com/xavierca1/cita-recordatorios/internal/entity"

// SeleccionarElegibles separa las citas que tienen teléfono de las que no,
// preservando el orden original. Solo se mira que el campo no esté vacío:
// un número mal formado igual pasa y fallará (contado) en el envío.
func SeleccionarElegibles(citas []entity.Cita) ([]entity.Cita, int) {
	elegibles := make([]entity.Cita, 0, len(citas))
	sinTelefono := 0

	for _, cita := range citas {
		if cita.Telefono == "" {
			sinTelefono++
			continue
		}
		elegibles = append(elegibles, cita)
	}

	return elegibles, sinTelefono
}
