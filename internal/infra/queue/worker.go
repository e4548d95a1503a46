package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/cita-recordatorios/internal/entity"
	"github.com/xavierca1/cita-recordatorios/internal/infra/http/middleware"
	"github.com/xavierca1/cita-recordatorios/internal/usecase"
)

// AgendaService define el contrato con la API de agendamiento.
type AgendaService interface {
	CitasDelDia(ctx context.Context, fecha, sede string) ([]entity.Cita, error)
}

// ReminderDispatcher corre el lote de envíos y devuelve el tablero final.
type ReminderDispatcher interface {
	Execute(ctx context.Context, citas []entity.Cita) *usecase.ResumenEnvio
}

// ResumenMailer avisa al operador cómo terminó la corrida. Opcional.
type ResumenMailer interface {
	EnviarResumen(fecha string, resumen *usecase.ResumenEnvio) error
}

type Worker struct {
	Channel    *amqp.Channel
	Agenda     AgendaService
	Dispatcher ReminderDispatcher
	Mailer     ResumenMailer
}

func NewWorker(ch *amqp.Channel, agenda AgendaService, dispatcher ReminderDispatcher, mailer ResumenMailer) *Worker {
	return &Worker{
		Channel:    ch,
		Agenda:     agenda,
		Dispatcher: dispatcher,
		Mailer:     mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual: el lote puede tardar minutos)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falla al registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload EnvioPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensaje podrido: rechazar sin requeue para no trancar la cola.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Job %s recibido: recordatorios para %s (sede: %q)",
				payload.JobID, payload.Fecha, payload.Sede)

			if err := w.processEnvio(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Job %s falló: %s", payload.JobID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de recordatorios esperando en la cola '%s'", queueName)
	<-forever
}

// processEnvio es el límite de error fatal del job: si la agenda no
// responde, el job entero se rechaza (va a la DLQ). Los fallos por cita
// ya quedaron absorbidos dentro del dispatcher como contadores.
func (w *Worker) processEnvio(ctx context.Context, payload EnvioPayload) error {
	citas, err := w.Agenda.CitasDelDia(ctx, payload.Fecha, payload.Sede)
	if err != nil {
		middleware.RecordIntegrationError("agenda")
		return &usecase.TechnicalError{
			Code:    "AGENDA_ERROR",
			Message: "no se pudo leer la agenda: " + err.Error(),
		}
	}

	resumen := w.Dispatcher.Execute(ctx, citas)

	middleware.RecordCorrida(resumen.Exitosos, resumen.Fallidos, resumen.RegistroFallidos)

	if w.Mailer != nil {
		if err := w.Mailer.EnviarResumen(payload.Fecha, resumen); err != nil {
			// El reporte por correo es cortesía: no tumba el job.
			log.Printf("⚠️ [WORKER] No se pudo enviar el resumen por correo: %v", err)
		}
	}

	log.Printf("✅ [WORKER] Job %s completado: %d/%d exitosos (%.1f%%)",
		payload.JobID, resumen.Exitosos, resumen.Total, resumen.TasaExito)

	return nil
}
