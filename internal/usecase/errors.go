package usecase

// DomainError es un rechazo esperado (input inválido, lote vacío exigido
// como error por el caller, etc). No indica falla de infraestructura.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError es una falla de infraestructura fuera del límite
// por-cita del loop de envío (ej: no se pudo leer el lote).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
