package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los repositorios traducen
// los errores del store hacia estos centinelas y los handlers HTTP los
// convierten en códigos de estado; ningún detalle interno de PostgreSQL
// cruza la frontera del API.
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStorage            = errors.New("error de almacenamiento")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// Storage clasifica un error que viene del store: respeta los centinelas ya
// traducidos (Conflict/NotFound/InvalidInput) y envuelve cualquier otro fallo
// como ErrStorage. Un timeout de contexto también termina aquí: se reporta
// como error de almacenamiento, nunca se reintenta en silencio.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

