package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EnvioPayload es el trabajo que viaja por la cola: qué día y qué sede
// recordar. El worker busca las citas y corre el lote.
type EnvioPayload struct {
	JobID         string `json:"job_id"`
	Fecha         string `json:"fecha"` // YYYY-MM-DD
	Sede          string `json:"sede,omitempty"`
	PlantillaID   string `json:"plantilla_id,omitempty"`
	SolicitadoPor string `json:"solicitado_por,omitempty"`
}

type ProducerInterface interface {
	PublishEnvio(ctx context.Context, payload EnvioPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishEnvio(ctx context.Context, payload EnvioPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error al serializar payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Sobrevive reinicios del broker
		},
	)
	if err != nil {
		return fmt.Errorf("falla al publicar en RabbitMQ: %w", err)
	}

	return nil
}
