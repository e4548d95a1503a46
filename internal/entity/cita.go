package entity

// Cita es el registro crudo tal como lo entrega la API de agendamiento.
// No se valida el esquema: los campos faltantes llegan con su zero value
// y los formateadores deciden qué hacer con ellos.
type Cita struct {
	Hora          int     `json:"hora"` // HHMM sin ceros a la izquierda, ej: 755
	AmPm          string  `json:"ampm"`
	Consultorio   string  `json:"consultorio"`
	Nombre        string  `json:"nombre"`
	Telefono      string  `json:"telefono"` // puede venir vacío o con varios números: "300... - 301..."
	TipoDocumento string  `json:"td"`
	Documento     string  `json:"documento"`
	Estado        string  `json:"estado"`
	MotivoCancela string  `json:"motivoCancela"`
	FechaSolicita string  `json:"fechaSolicita"`
	Entidad       string  `json:"entidad"`
	Tipo          string  `json:"tipo"`
	Concepto      string  `json:"concepto"`
	Observacion   string  `json:"observacion"`
	Orden         int     `json:"orden"`
	Medico        string  `json:"medico"`
	Requerida     string  `json:"requerida"` // fecha autoritativa de la cita (ISO)
	CreadaPor     string  `json:"creadaPor"`
	ModificadaPor string  `json:"modificadaPor"`
	Actualizada   string  `json:"actualizada"`
	ID            int64   `json:"id"`
	Impresa       *string `json:"impresa"`
	Sede          string  `json:"sede"`
}

// CitaProcesada es la proyección de una Cita lista para la plantilla de
// WhatsApp. Se construye justo antes del envío y no se persiste.
type CitaProcesada struct {
	CitaID      int64  `json:"cita_id"`
	Telefono    string `json:"telefono"`
	Nombre      string `json:"nombre"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
	Medico      string `json:"medico"`
	Sede        string `json:"sede"`
	Consultorio string `json:"consultorio"`
	Tipo        string `json:"tipo"`
	Entidad     string `json:"entidad"`
	Observacion string `json:"observacion"`
}
