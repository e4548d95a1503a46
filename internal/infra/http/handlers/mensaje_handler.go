package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

type MensajeHandler struct {
	Repo entity.MensajeRepository
}

func NewMensajeHandler(repo entity.MensajeRepository) *MensajeHandler {
	return &MensajeHandler{Repo: repo}
}

func (h *MensajeHandler) HandleListar(w http.ResponseWriter, r *http.Request) {
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))

	mensajes, err := h.Repo.ListarRecientes(r.Context(), limite)
	if err != nil {
		http.Error(w, "no se pudieron listar los mensajes", http.StatusInternalServerError)
		return
	}

	if mensajes == nil {
		mensajes = []entity.MensajeEnviado{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": mensajes})
}
