package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHora(t *testing.T) {
	f := FormatHora(755, "AM")
	assert.Equal(t, "7:55 AM", f.Valor)
	assert.Empty(t, f.Aviso)

	f = FormatHora(1130, "AM")
	assert.Equal(t, "11:30 AM", f.Valor)
	assert.Empty(t, f.Aviso)

	// 5 se interpreta como 0005
	f = FormatHora(5, "AM")
	assert.Equal(t, "0:05 AM", f.Valor)

	f = FormatHora(1259, "PM")
	assert.Equal(t, "12:59 PM", f.Valor)
	assert.Empty(t, f.Aviso)
}

func TestFormatHoraFueraDeRangoPasaConAviso(t *testing.T) {
	// La API a veces manda valores imposibles: salen tal cual, con aviso.
	f := FormatHora(2599, "PM")
	assert.Equal(t, "25:99 PM", f.Valor)
	assert.NotEmpty(t, f.Aviso)
}

func TestFormatFecha(t *testing.T) {
	f := FormatFecha("2025-10-22")
	assert.Equal(t, "miércoles, 22 de octubre de 2025", f.Valor)
	assert.Empty(t, f.Aviso)

	// Día sin cero a la izquierda
	f = FormatFecha("2025-10-05")
	assert.Equal(t, "domingo, 5 de octubre de 2025", f.Valor)
}

func TestFormatFechaConHora(t *testing.T) {
	f := FormatFecha("2025-10-22T08:30:00")
	assert.Equal(t, "miércoles, 22 de octubre de 2025", f.Valor)
	assert.Empty(t, f.Aviso)
}

func TestFormatFechaInvalidaNoRevienta(t *testing.T) {
	f := FormatFecha("no-es-fecha")
	assert.Equal(t, FechaInvalida, f.Valor)
	assert.NotEmpty(t, f.Aviso)

	f = FormatFecha("")
	assert.Equal(t, FechaInvalida, f.Valor)
	assert.NotEmpty(t, f.Aviso)
}

func TestExtraerPrimerTelefono(t *testing.T) {
	assert.Equal(t, "", ExtraerPrimerTelefono(""))

	// Ya trae indicativo: queda igual
	assert.Equal(t, "+573001112233", ExtraerPrimerTelefono("+573001112233"))

	// Varios números: solo el primero, con indicativo
	assert.Equal(t, "+573001112233", ExtraerPrimerTelefono("3001112233 - 3002223344"))

	// Sin indicativo: se antepone +57
	assert.Equal(t, "+573001112233", ExtraerPrimerTelefono("3001112233"))

	// Espacios alrededor
	assert.Equal(t, "+573001112233", ExtraerPrimerTelefono(" 3001112233 "))
}

func TestLimpiarObservacion(t *testing.T) {
	assert.Equal(t, ObservacionVacia, LimpiarObservacion(""))

	// Salto de línea escapado (así llega del JSON crudo)
	assert.Equal(t, "Traer - exámenes", LimpiarObservacion(`Traer\nexámenes`))

	// Salto de línea real
	assert.Equal(t, "Traer - exámenes", LimpiarObservacion("Traer\nexámenes"))

	// Espacios repetidos colapsan
	assert.Equal(t, "ayunas de 8 horas", LimpiarObservacion("  ayunas   de 8   horas "))
}

func TestLimpiarObservacionRecortaA500(t *testing.T) {
	larga := strings.Repeat("a", 600)
	limpia := LimpiarObservacion(larga)
	assert.Len(t, limpia, ObservacionMaxLen)

	// Sin marcador de corte
	assert.Equal(t, strings.Repeat("a", 500), limpia)
}
