package checkout

import (
	"errors"
	"fmt"
)

// Errores de negocio exportados (los usa el controller)
var (
	ErrWrongStep           = errors.New("acción inválida para el paso actual")
	ErrNoPrevious          = errors.New("no se puede volver atrás desde este paso")
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrVerificationPending = errors.New("ya hay una verificación en curso")
)

// ValidationError indica un campo requerido faltante. Bloquea el avance
// sin mutar el estado del checkout.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo requerido: %s", e.Field)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
