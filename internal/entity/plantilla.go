package entity

// CampoPlantilla identifica un placeholder posicional de la plantilla
// aprobada en Meta. El orden dentro de Plantilla.Campos ES el contrato:
// el campo i llena el {{i+1}} del cuerpo del mensaje.
type CampoPlantilla string

const (
	CampoNombre      CampoPlantilla = "nombre"
	CampoFecha       CampoPlantilla = "fecha"
	CampoHora        CampoPlantilla = "hora"
	CampoMedico      CampoPlantilla = "medico"
	CampoSede        CampoPlantilla = "sede"
	CampoConsultorio CampoPlantilla = "consultorio"
	CampoTipo        CampoPlantilla = "tipo"
	CampoEntidad     CampoPlantilla = "entidad"
	CampoObservacion CampoPlantilla = "observacion"
)

// Plantilla describe una versión aprobada de la plantilla de WhatsApp.
// Agregar un campo (ej: observación) es declarar una plantilla nueva,
// no tocar el armado de parámetros.
type Plantilla struct {
	Nombre string
	Campos []CampoPlantilla
}

var (
	// RecordatorioCitaV1 es la plantilla aprobada actual: 8 parámetros.
	RecordatorioCitaV1 = Plantilla{
		Nombre: "recordatorio_cita_v1",
		Campos: []CampoPlantilla{
			CampoNombre,
			CampoFecha,
			CampoHora,
			CampoMedico,
			CampoSede,
			CampoConsultorio,
			CampoTipo,
			CampoEntidad,
		},
	}

	// RecordatorioCitaConObsV1 agrega la observación como {{9}}.
	// Pendiente de aprobación en Meta: no usar hasta que esté activa.
	RecordatorioCitaConObsV1 = Plantilla{
		Nombre: "recordatorio_cita_con_obs_v1",
		Campos: append(append([]CampoPlantilla{}, RecordatorioCitaV1.Campos...), CampoObservacion),
	}
)

// PlantillaPorNombre resuelve una plantilla conocida. Un nombre desconocido
// cae a la v1: elegir mal la plantilla es error del operador, no del pipeline.
func PlantillaPorNombre(nombre string) Plantilla {
	switch nombre {
	case RecordatorioCitaConObsV1.Nombre:
		return RecordatorioCitaConObsV1
	default:
		return RecordatorioCitaV1
	}
}

// Parametros arma el vector posicional de la plantilla desde la cita procesada.
func (p Plantilla) Parametros(c CitaProcesada) []string {
	params := make([]string, 0, len(p.Campos))
	for _, campo := range p.Campos {
		params = append(params, valorCampo(campo, c))
	}
	return params
}

func valorCampo(campo CampoPlantilla, c CitaProcesada) string {
	switch campo {
	case CampoNombre:
		return c.Nombre
	case CampoFecha:
		return c.Fecha
	case CampoHora:
		return c.Hora
	case CampoMedico:
		return c.Medico
	case CampoSede:
		return c.Sede
	case CampoConsultorio:
		return c.Consultorio
	case CampoTipo:
		return c.Tipo
	case CampoEntidad:
		return c.Entidad
	case CampoObservacion:
		return c.Observacion
	default:
		return ""
	}
}
