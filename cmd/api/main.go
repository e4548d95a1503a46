package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/cita-recordatorios/internal/infra/database"
	"github.com/xavierca1/cita-recordatorios/internal/infra/http/handlers"
	"github.com/xavierca1/cita-recordatorios/internal/infra/http/middleware"
	"github.com/xavierca1/cita-recordatorios/internal/infra/integration/agenda"
	"github.com/xavierca1/cita-recordatorios/internal/infra/integration/whatsapp"
	"github.com/xavierca1/cita-recordatorios/internal/infra/mail"
	"github.com/xavierca1/cita-recordatorios/internal/infra/queue"
	"github.com/xavierca1/cita-recordatorios/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getEnv("RABBITMQ_USER", "user"),
		getEnv("RABBITMQ_PASS", "password"),
		getEnv("RABBITMQ_HOST", "localhost"),
		getEnv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositorio
	mensajeRepo := database.NewMensajeRepository(db)

	// 2. Integraciones
	waClient := whatsapp.NewClient(os.Getenv("WHATSAPP_ACCESS_TOKEN"), os.Getenv("WHATSAPP_PHONE_ID"))
	agendaClient := agenda.NewClient(os.Getenv("AGENDA_API_URL"), os.Getenv("AGENDA_API_TOKEN"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// Reporte por correo al operador (opcional: sin MAIL_HOST no se envía)
	var mailer queue.ResumenMailer
	if os.Getenv("MAIL_HOST") != "" {
		mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
		mailer = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			getEnv("MAIL_FROM", "no-responder@consultorio.co"),
			os.Getenv("REPORTE_EMAIL"),
		)
	}

	// 3. UseCase de envío
	plantillaID := getEnv("WHATSAPP_TEMPLATE_ID", "recordatorio_cita_v1")
	sendUC := usecase.NewSendRemindersUseCase(waClient, mensajeRepo, plantillaID)

	// 4. Worker (consume la cola y corre el lote)
	worker := queue.NewWorker(rabbitMQ.Ch, agendaClient, sendUC, mailer)
	go worker.Start(queue.QueueName)

	// 5. Handlers
	recordatorioHandler := handlers.NewRecordatorioHandler(producer, plantillaID)
	mensajeHandler := handlers.NewMensajeHandler(mensajeRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/recordatorios", recordatorioHandler.HandleEnviar)
	r.Post("/recordatorios/preview", recordatorioHandler.HandlePreview)
	r.Get("/mensajes", mensajeHandler.HandleListar)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getEnv("PORT", "8080")
	log.Printf("🔥 Servicio de recordatorios escuchando en %s", port)
	http.ListenAndServe(port, r)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
