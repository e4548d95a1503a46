package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/cita-recordatorios/internal/entity"
)

// MockWhatsAppSender
type MockWhatsAppSender struct {
	mock.Mock
}

func (m *MockWhatsAppSender) EnviarPlantilla(ctx context.Context, telefono, plantilla string, parametros []string) (string, error) {
	args := m.Called(ctx, telefono, plantilla, parametros)
	return args.String(0), args.Error(1)
}

// MockMensajeRepository
type MockMensajeRepository struct {
	mock.Mock
}

func (m *MockMensajeRepository) Guardar(ctx context.Context, msg *entity.MensajeEnviado) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMensajeRepository) ListarRecientes(ctx context.Context, limite int) ([]entity.MensajeEnviado, error) {
	args := m.Called(ctx, limite)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MensajeEnviado), args.Error(1)
}

func nuevoUseCaseDePrueba(sender *MockWhatsAppSender, repo *MockMensajeRepository) (*SendRemindersUseCase, *int) {
	uc := NewSendRemindersUseCase(sender, repo, "recordatorio_cita_v1")
	pausas := 0
	uc.Sleep = func(time.Duration) { pausas++ }
	return uc, &pausas
}

// TestEnvioLoteConCitaSinTelefono - la cita sin teléfono se excluye, las
// demás se intentan en orden con una sola pausa entre ellas
func TestEnvioLoteConCitaSinTelefono(t *testing.T) {
	ctx := context.Background()

	sender := new(MockWhatsAppSender)
	repo := new(MockMensajeRepository)
	uc, pausas := nuevoUseCaseDePrueba(sender, repo)

	sender.On("EnviarPlantilla", mock.Anything, mock.Anything, "recordatorio_cita_v1", mock.Anything).
		Return("wamid.OK", nil)
	repo.On("Guardar", ctx, mock.Anything).Return(nil)

	citas := []entity.Cita{
		{ID: 1, Telefono: "3001112233", Nombre: "ANA", Requerida: "2025-10-22", Hora: 755, AmPm: "AM"},
		{ID: 2, Telefono: "", Nombre: "SIN TELEFONO"},
		{ID: 3, Telefono: "3002223344", Nombre: "LUIS", Requerida: "2025-10-22", Hora: 1130, AmPm: "AM"},
	}

	resumen := uc.Execute(ctx, citas)

	assert.Equal(t, 2, resumen.Total)
	assert.Equal(t, 2, resumen.Exitosos)
	assert.Equal(t, 0, resumen.Fallidos)
	assert.Equal(t, 1, resumen.SinTelefono)
	assert.Equal(t, 100.0, resumen.TasaExito)

	// Una sola pausa: entre los dos envíos, no después del último
	assert.Equal(t, 1, *pausas)

	sender.AssertNumberOfCalls(t, "EnviarPlantilla", 2)
	repo.AssertNumberOfCalls(t, "Guardar", 2)

	// El orden original se respeta
	assert.Equal(t, int64(1), resumen.Resultados[0].CitaID)
	assert.Equal(t, int64(3), resumen.Resultados[1].CitaID)
	assert.Equal(t, "wamid.OK", resumen.Resultados[0].MessageID)
}

// TestEnvioFalloParcialNoCortaElLote - el primer envío falla, el segundo
// sale; solo el exitoso se persiste
func TestEnvioFalloParcialNoCortaElLote(t *testing.T) {
	ctx := context.Background()

	sender := new(MockWhatsAppSender)
	repo := new(MockMensajeRepository)
	uc, _ := nuevoUseCaseDePrueba(sender, repo)

	sender.On("EnviarPlantilla", mock.Anything, "+573001112233", mock.Anything, mock.Anything).
		Return("", errors.New("numero no registrado en whatsapp"))
	sender.On("EnviarPlantilla", mock.Anything, "+573002223344", mock.Anything, mock.Anything).
		Return("wamid.B", nil)
	repo.On("Guardar", ctx, mock.Anything).Return(nil)

	citas := []entity.Cita{
		{ID: 10, Telefono: "3001112233", Requerida: "2025-10-22", Hora: 800, AmPm: "AM"},
		{ID: 11, Telefono: "3002223344", Requerida: "2025-10-22", Hora: 900, AmPm: "AM"},
	}

	resumen := uc.Execute(ctx, citas)

	assert.Equal(t, 2, resumen.Total)
	assert.Equal(t, 1, resumen.Exitosos)
	assert.Equal(t, 1, resumen.Fallidos)
	assert.Equal(t, 50.0, resumen.TasaExito)

	assert.False(t, resumen.Resultados[0].Exitoso)
	assert.Contains(t, resumen.Resultados[0].Error, "no registrado")
	assert.True(t, resumen.Resultados[1].Exitoso)

	// Solo el envío exitoso queda registrado
	repo.AssertNumberOfCalls(t, "Guardar", 1)
}

// TestEnvioLoteSinElegibles - sin citas con teléfono no se intenta nada
func TestEnvioLoteSinElegibles(t *testing.T) {
	sender := new(MockWhatsAppSender)
	repo := new(MockMensajeRepository)
	uc, pausas := nuevoUseCaseDePrueba(sender, repo)

	resumen := uc.Execute(context.Background(), []entity.Cita{
		{ID: 1, Telefono: ""},
		{ID: 2, Telefono: ""},
	})

	assert.Equal(t, 0, resumen.Total)
	assert.Equal(t, 2, resumen.SinTelefono)
	assert.Equal(t, 0.0, resumen.TasaExito)
	assert.Equal(t, 0, *pausas)

	sender.AssertNotCalled(t, "EnviarPlantilla")
	repo.AssertNotCalled(t, "Guardar")
}

// TestEnvioFallaElRegistroPeroCuentaComoExitoso - si el guardado en BD
// falla después de un envío aceptado, el envío sigue contando
func TestEnvioFallaElRegistroPeroCuentaComoExitoso(t *testing.T) {
	ctx := context.Background()

	sender := new(MockWhatsAppSender)
	repo := new(MockMensajeRepository)
	uc, _ := nuevoUseCaseDePrueba(sender, repo)

	sender.On("EnviarPlantilla", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("wamid.X", nil)
	repo.On("Guardar", ctx, mock.Anything).Return(errors.New("database down"))

	resumen := uc.Execute(ctx, []entity.Cita{
		{ID: 7, Telefono: "3001112233", Requerida: "2025-10-22", Hora: 755, AmPm: "AM"},
	})

	assert.Equal(t, 1, resumen.Exitosos)
	assert.Equal(t, 0, resumen.Fallidos)
	assert.Equal(t, 1, resumen.RegistroFallidos)
	assert.Equal(t, 100.0, resumen.TasaExito)
}

// TestEnvioArmaOchoParametrosEnOrden - el vector posicional de la plantilla
func TestEnvioArmaOchoParametrosEnOrden(t *testing.T) {
	ctx := context.Background()

	sender := new(MockWhatsAppSender)
	repo := new(MockMensajeRepository)
	uc, _ := nuevoUseCaseDePrueba(sender, repo)

	var capturados []string
	sender.On("EnviarPlantilla", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(p []string) bool {
		capturados = p
		return true
	})).Return("wamid.Z", nil)
	repo.On("Guardar", ctx, mock.Anything).Return(nil)

	uc.Execute(ctx, []entity.Cita{citaDePrueba()})

	assert.Equal(t, []string{
		"MARIA LOPEZ",
		"miércoles, 22 de octubre de 2025",
		"7:55 AM",
		"DR. GOMEZ",
		"SEDE NORTE",
		"201",
		"CONTROL",
		"SURA",
	}, capturados)
}

// TestEnvioGuardaRegistroConMensajeLegible - el registro persistido lleva
// el resumen humano del recordatorio
func TestEnvioGuardaRegistroConMensajeLegible(t *testing.T) {
	ctx := context.Background()

	sender := new(MockWhatsAppSender)
	repo := new(MockMensajeRepository)
	uc, _ := nuevoUseCaseDePrueba(sender, repo)

	sender.On("EnviarPlantilla", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("wamid.R", nil)

	var guardado *entity.MensajeEnviado
	repo.On("Guardar", ctx, mock.MatchedBy(func(m *entity.MensajeEnviado) bool {
		guardado = m
		return true
	})).Return(nil)

	uc.Execute(ctx, []entity.Cita{citaDePrueba()})

	assert.NotNil(t, guardado)
	assert.Equal(t, int64(4512), guardado.CitaID)
	assert.Equal(t, "Recordatorio enviado para miércoles, 22 de octubre de 2025 a las 7:55 AM", guardado.Mensaje)
	assert.Equal(t, "recordatorio_cita_v1", guardado.PlantillaID)
	assert.Equal(t, "2025-10-22", guardado.FechaCita)
	assert.NotEmpty(t, guardado.ID)
}

func TestCalcularTasaExito(t *testing.T) {
	assert.Equal(t, 100.0, CalcularTasaExito(2, 2))
	assert.Equal(t, 50.0, CalcularTasaExito(1, 2))
	assert.Equal(t, 33.3, CalcularTasaExito(1, 3))
	assert.Equal(t, 66.7, CalcularTasaExito(2, 3))
	assert.Equal(t, 0.0, CalcularTasaExito(0, 0))
}
