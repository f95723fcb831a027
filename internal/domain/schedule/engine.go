package schedule

// Engine é o motor de agendamento: puro, síncrono, sem estado mutável
// próprio. Toda operação recebe o conjunto de agendamentos em memória
// e devolve registros novos para o chamador persistir.
type Engine struct {
	cfg Settings
}

func NewEngine(cfg Settings) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Settings {
	return e.cfg
}
