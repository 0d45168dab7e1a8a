package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz del
// aislamiento multi-tenant: las bodegas (y por lo tanto el inventario y las
// alertas) pertenecen a exactamente una empresa.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
