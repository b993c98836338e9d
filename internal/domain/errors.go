package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrSupplierNotFound  = errors.New("proveedor no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrQuantityOverflow  = errors.New("la cantidad resultante excede el máximo permitido")
)

// ValidationError agrupa las reglas incumplidas por campo (clave = nombre JSON del campo).
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un ValidationError vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra una regla incumplida; conserva la primera regla por campo.
func (e *ValidationError) Add(field, rule string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = rule
}

// HasErrors indica si se registró al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil devuelve nil si no hay errores, para poder retornarlo directamente como error.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación fallida (" + strings.Join(parts, ", ") + ")"
}

// Is permite errors.Is(err, ErrInvalidInput) sobre un ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
