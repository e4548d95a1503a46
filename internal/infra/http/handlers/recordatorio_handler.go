package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/xavierca1/cita-recordatorios/internal/entity"
	"github.com/xavierca1/cita-recordatorios/internal/infra/queue"
	"github.com/xavierca1/cita-recordatorios/internal/usecase"
)

type RecordatorioHandler struct {
	Producer    queue.ProducerInterface
	PlantillaID string
}

func NewRecordatorioHandler(producer queue.ProducerInterface, plantillaID string) *RecordatorioHandler {
	return &RecordatorioHandler{
		Producer:    producer,
		PlantillaID: plantillaID,
	}
}

type envioRequest struct {
	Fecha         string `json:"fecha"`
	Sede          string `json:"sede"`
	SolicitadoPor string `json:"solicitado_por"`
}

type envioResponse struct {
	JobID  string `json:"job_id"`
	Estado string `json:"estado"`
}

// HandleEnviar encola una corrida de recordatorios. El envío real lo hace
// el worker: acá solo se valida la fecha y se publica el job.
func (h *RecordatorioHandler) HandleEnviar(w http.ResponseWriter, r *http.Request) {
	var input envioRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := usecase.ValidarSolicitudEnvio(input.Fecha); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload := queue.EnvioPayload{
		JobID:         uuid.New().String(),
		Fecha:         input.Fecha,
		Sede:          input.Sede,
		PlantillaID:   h.PlantillaID,
		SolicitadoPor: input.SolicitadoPor,
	}

	if err := h.Producer.PublishEnvio(r.Context(), payload); err != nil {
		http.Error(w, "no se pudo encolar el envío: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(envioResponse{JobID: payload.JobID, Estado: "ENCOLADO"})
}

type previewRequest struct {
	Data []entity.Cita `json:"data"`
}

// HandlePreview procesa un lote en seco y devuelve cómo quedaría cada
// mensaje, con alertas. No envía nada ni toca la base de datos.
func (h *RecordatorioHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var input previewRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	resumen := usecase.PreviewLote(input.Data)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumen)
}
