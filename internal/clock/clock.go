package clock

import "time"

// Clock abstrai time.Now para que casos de uso e jobs fiquem
// determinísticos em teste.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed devolve sempre o mesmo instante.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
