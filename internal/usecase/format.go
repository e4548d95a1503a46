package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// PrefijoPais se antepone a los números que llegan sin indicativo.
	PrefijoPais = "+57"

	// ObservacionMaxLen limita el texto libre que viaja en la plantilla.
	ObservacionMaxLen = 500

	ObservacionVacia = "Sin observaciones adicionales"

	FechaInvalida = "Fecha inválida"
)

var diasSemana = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var meses = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var espaciosRe = regexp.MustCompile(`\s+`)

var saltosDeLinea = strings.NewReplacer(`\n`, " - ", "\n", " - ")

// Formateado es el resultado de un formateador blando: siempre trae un
// valor usable y, cuando el dato venía degradado, un aviso para que el
// caller lo pueda registrar. Nunca corta el lote.
type Formateado struct {
	Valor string `json:"valor"`
	Aviso string `json:"aviso,omitempty"`
}

// FormatHora convierte la hora numérica de la API (755) a "7:55 AM".
// El valor se interpreta como HHMM con ceros a la izquierda. No se valida
// el rango: 2599 sale como "25:99" con aviso, igual que llegó.
func FormatHora(hora int, ampm string) Formateado {
	horaStr := fmt.Sprintf("%04d", hora)
	hh, _ := strconv.Atoi(horaStr[:2])
	minutos := horaStr[2:4]

	f := Formateado{Valor: fmt.Sprintf("%d:%s %s", hh, minutos, ampm)}
	if mm, _ := strconv.Atoi(minutos); hh > 12 || mm > 59 {
		f.Aviso = fmt.Sprintf("hora fuera de rango: %d", hora)
	}
	return f
}

// FormatFecha convierte "2025-10-22" en "miércoles, 22 de octubre de 2025".
// Acepta también fecha-hora ISO y se queda con la parte de fecha. Si no se
// puede interpretar devuelve FechaInvalida con aviso, nunca error.
func FormatFecha(fechaStr string) Formateado {
	parte := fechaStr
	if i := strings.IndexByte(parte, 'T'); i > 0 {
		parte = parte[:i]
	}

	t, err := time.Parse("2006-01-02", parte)
	if err != nil {
		return Formateado{
			Valor: FechaInvalida,
			Aviso: fmt.Sprintf("fecha no interpretable: %q", fechaStr),
		}
	}

	return Formateado{
		Valor: fmt.Sprintf("%s, %d de %s de %d",
			diasSemana[t.Weekday()], t.Day(), meses[t.Month()-1], t.Year()),
	}
}

// ExtraerPrimerTelefono toma el primer número cuando el campo trae varios
// separados por " - " y le antepone el indicativo del país si falta.
// Los números adicionales se descartan.
func ExtraerPrimerTelefono(telefono string) string {
	if telefono == "" {
		return ""
	}

	numeros := strings.Split(telefono, " - ")
	primero := strings.TrimSpace(numeros[0])

	if primero != "" && !strings.HasPrefix(primero, "+") {
		return PrefijoPais + primero
	}

	return primero
}

// LimpiarObservacion normaliza el texto libre de la cita: saltos de línea
// (reales y escapados) pasan a " - ", los espacios repetidos se colapsan y
// el resultado se recorta a ObservacionMaxLen sin marcador de corte.
func LimpiarObservacion(obs string) string {
	if obs == "" {
		return ObservacionVacia
	}

	limpia := saltosDeLinea.Replace(obs)
	limpia = espaciosRe.ReplaceAllString(limpia, " ")
	limpia = strings.TrimSpace(limpia)

	if runas := []rune(limpia); len(runas) > ObservacionMaxLen {
		limpia = string(runas[:ObservacionMaxLen])
	}
	return limpia
}
