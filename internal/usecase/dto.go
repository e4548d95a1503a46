package usecase

import (
	"math"

	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

// ResultadoEnvio es el desenlace de un recipiente dentro de la corrida.
type ResultadoEnvio struct {
	CitaID    int64  `json:"cita_id"`
	Telefono  string `json:"telefono"`
	Exitoso   bool   `json:"exitoso"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ResumenEnvio es el tablero final de una corrida. Total cuenta solo los
// intentos (citas elegibles); SinTelefono quedó por fuera del lote y no es
// un fallo. RegistroFallidos son envíos exitosos cuyo guardado en base de
// datos falló: cuentan como exitosos pero se reportan aparte.
type ResumenEnvio struct {
	CorridaID        string           `json:"corrida_id"`
	PlantillaID      string           `json:"plantilla_id"`
	Total            int              `json:"total"`
	Exitosos         int              `json:"exitosos"`
	Fallidos         int              `json:"fallidos"`
	SinTelefono      int              `json:"sin_telefono"`
	RegistroFallidos int              `json:"registro_fallidos"`
	TasaExito        float64          `json:"tasa_exito"`
	Resultados       []ResultadoEnvio `json:"resultados"`
}

// CalcularTasaExito devuelve el porcentaje de éxito con un decimal.
// Con total cero no hubo intentos y la tasa queda en 0.
func CalcularTasaExito(exitosos, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(exitosos)/float64(total)*1000) / 10
}

// PreviewCita es una cita procesada en seco, con sus alertas, tal como la
// muestra el endpoint de preview antes de autorizar un envío real.
type PreviewCita struct {
	Procesada entity.CitaProcesada `json:"procesada"`
	Elegible  bool                 `json:"elegible"`
	Alertas   []string             `json:"alertas,omitempty"`
}

type ResumenPreview struct {
	Total       int           `json:"total"`
	ConTelefono int           `json:"con_telefono"`
	SinTelefono int           `json:"sin_telefono"`
	Citas       []PreviewCita `json:"citas"`
}
