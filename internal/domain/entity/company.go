package entity

import "time"

// Company representa una organización dueña de bodegas. El motor de alertas solo la usa para acotar consultas.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
