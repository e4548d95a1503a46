package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

// DelayEntreEnvios es la pausa fija entre dos envíos consecutivos.
// Rate limit simple: no hay backoff ni reintentos.
const DelayEntreEnvios = 1 * time.Second

type SendRemindersUseCase struct {
	Sender      WhatsAppSender
	Repo        entity.MensajeRepository
	PlantillaID string
	Delay       time.Duration
	Sleep       func(time.Duration) // inyectable en tests
}

func NewSendRemindersUseCase(sender WhatsAppSender, repo entity.MensajeRepository, plantillaID string) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		Sender:      sender,
		Repo:        repo,
		PlantillaID: plantillaID,
		Delay:       DelayEntreEnvios,
		Sleep:       time.Sleep,
	}
}

// Execute recorre el lote en orden, un envío a la vez. Cada cita se intenta
// exactamente una vez: el fallo de una no corta las demás. Solo los envíos
// aceptados por la API se guardan en base de datos; si el guardado falla el
// envío sigue contando como exitoso y queda en RegistroFallidos.
func (uc *SendRemindersUseCase) Execute(ctx context.Context, citas []entity.Cita) *ResumenEnvio {
	elegibles, sinTelefono := SeleccionarElegibles(citas)

	plantilla := entity.PlantillaPorNombre(uc.PlantillaID)

	resumen := &ResumenEnvio{
		CorridaID:   uuid.New().String(),
		PlantillaID: plantilla.Nombre,
		Total:       len(elegibles),
		SinTelefono: sinTelefono,
	}

	log.Printf("📊 Corrida %s: %d citas en el lote, %d con teléfono, %d sin teléfono",
		resumen.CorridaID, len(citas), len(elegibles), sinTelefono)

	if len(elegibles) == 0 {
		log.Println("⚠️ No hay citas con teléfono para enviar")
		return resumen
	}

	log.Printf("📝 Usando plantilla: %s", plantilla.Nombre)

	for i, cita := range elegibles {
		procesada, avisos := Normalizar(cita)
		for _, aviso := range avisos {
			log.Printf("⚠️ %s", aviso)
		}

		log.Printf("📋 Cita %d/%d - ID: %d - %s (%s)",
			i+1, len(elegibles), procesada.CitaID, procesada.Nombre, procesada.Telefono)

		parametros := plantilla.Parametros(procesada)

		resultado := ResultadoEnvio{
			CitaID:   procesada.CitaID,
			Telefono: procesada.Telefono,
		}

		messageID, err := uc.Sender.EnviarPlantilla(ctx, procesada.Telefono, plantilla.Nombre, parametros)
		if err != nil {
			resumen.Fallidos++
			resultado.Error = err.Error()
			log.Printf("❌ Error al enviar a cita %d: %v", procesada.CitaID, err)
		} else {
			resumen.Exitosos++
			resultado.Exitoso = true
			resultado.MessageID = messageID
			log.Printf("✅ Mensaje enviado (ID: %s)", messageID)

			registro := entity.NewMensajeEnviado(
				procesada.CitaID,
				procesada.Nombre,
				procesada.Telefono,
				fmt.Sprintf("Recordatorio enviado para %s a las %s", procesada.Fecha, procesada.Hora),
				plantilla.Nombre,
				cita.Requerida,
				procesada.Medico,
				procesada.Sede,
			)
			if err := uc.Repo.Guardar(ctx, registro); err != nil {
				// El mensaje ya salió: cuenta como exitoso, el hueco en el
				// log queda reportado aparte.
				resumen.RegistroFallidos++
				log.Printf("⚠️ Envío exitoso pero no se pudo guardar el registro de la cita %d: %v",
					procesada.CitaID, err)
			}
		}

		resumen.Resultados = append(resumen.Resultados, resultado)

		if i < len(elegibles)-1 {
			uc.Sleep(uc.Delay)
		}
	}

	resumen.TasaExito = CalcularTasaExito(resumen.Exitosos, resumen.Total)

	log.Printf("📊 Resumen corrida %s: total=%d exitosos=%d fallidos=%d tasa=%.1f%%",
		resumen.CorridaID, resumen.Total, resumen.Exitosos, resumen.Fallidos, resumen.TasaExito)

	return resumen
}
