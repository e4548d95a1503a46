package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/xavierca1/cita-recordatorios/internal/usecase"
	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string // operador que recibe el reporte
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// EnviarResumen manda al operador el tablero de la corrida recién terminada.
func (s *EmailSender) EnviarResumen(fecha string, resumen *usecase.ResumenEnvio) error {
	data := ResumenEmailData{
		Fecha:            fecha,
		CorridaID:        resumen.CorridaID,
		PlantillaID:      resumen.PlantillaID,
		Total:            resumen.Total,
		Exitosos:         resumen.Exitosos,
		Fallidos:         resumen.Fallidos,
		SinTelefono:      resumen.SinTelefono,
		RegistroFallidos: resumen.RegistroFallidos,
		TasaExito:        resumen.TasaExito,
	}

	tmplPath := filepath.Join("templates", "resumen.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("error al leer template de correo: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("error al procesar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Recordatorios de citas %s: %d/%d enviados", fecha, resumen.Exitosos, resumen.Total))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo SMTP: %w", err)
	}

	return nil
}
