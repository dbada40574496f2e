package clock

import "time"

// Clock fuente de tiempo inyectable para que los cálculos con ventanas sean deterministas en tests.
type Clock interface {
	Now() time.Time
}

// System reloj de pared en UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed reloj detenido en un instante.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
