package entity

import (
	"strings"
	"time"
)

// Tipos de movimiento de material.
const (
	KindLoan   = "loan"   // préstamo: disminuye el saldo disponible
	KindReturn = "return" // devolución: aumenta el saldo disponible
)

// Estados por defecto según el tipo de movimiento.
const (
	StatusLoaned   = "loaned"
	StatusReturned = "returned"
)

// Movement representa un movimiento inmutable de material (préstamo o devolución).
// Quantity siempre guarda la magnitud sin signo; el signo se reconstruye desde Kind.
type Movement struct {
	ID               int64
	MaterialID       int64
	UserID           int64
	Kind             string
	Quantity         int64
	MovedAt          time.Time
	ExpectedReturnAt *time.Time
	Status           string
	CreatedAt        time.Time
}

// MovementWithRefs movimiento enriquecido con los nombres del material y del responsable.
type MovementWithRefs struct {
	Movement
	MaterialName string
	UserName     string
}

// NormalizeKind normaliza el tipo a minúsculas y valida que sea loan o return.
// Devuelve el tipo normalizado y false si no es reconocido.
func NormalizeKind(kind string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(kind))
	if k != KindLoan && k != KindReturn {
		return "", false
	}
	return k, true
}

// DefaultStatus devuelve el estado por defecto para un tipo ya normalizado.
func DefaultStatus(kind string) string {
	if kind == KindReturn {
		return StatusReturned
	}
	return StatusLoaned
}
