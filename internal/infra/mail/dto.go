package mail

type ResumenEmailData struct {
	Fecha            string
	CorridaID        string
	PlantillaID      string
	Total            int
	Exitosos         int
	Fallidos         int
	SinTelefono      int
	RegistroFallidos int
	TasaExito        float64
}
