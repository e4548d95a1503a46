package agenda

import "github.com/xavierca1/cita-recordatorios/internal/entity"

// La API envuelve el arreglo de citas en un campo "data".
type citasResponse struct {
	Data []entity.Cita `json:"data"`
}
