package usecase

import "github.com/xavierca1/cita-recordatorios/internal/entity"

// PreviewLote procesa un lote en seco: normaliza cada cita y reporta las
// alertas que el operador querría ver antes de autorizar el envío real.
// No toca ningún servicio externo.
func PreviewLote(citas []entity.Cita) *ResumenPreview {
	resumen := &ResumenPreview{Total: len(citas)}

	for _, cita := range citas {
		procesada, avisos := Normalizar(cita)

		item := PreviewCita{
			Procesada: procesada,
			Elegible:  cita.Telefono != "",
			Alertas:   avisos,
		}

		if !item.Elegible {
			item.Alertas = append(item.Alertas, "sin teléfono - no se puede enviar")
			resumen.SinTelefono++
		} else {
			resumen.ConTelefono++
		}
		if procesada.Nombre == "" {
			item.Alertas = append(item.Alertas, "sin nombre")
		}
		if cita.Tipo == "" {
			item.Alertas = append(item.Alertas, `tipo vacío - se usará "CONSULTA"`)
		}
		if cita.Entidad == "" {
			item.Alertas = append(item.Alertas, `entidad vacía - se usará "PARTICULAR"`)
		}

		resumen.Citas = append(resumen.Citas, item)
	}

	return resumen
}
