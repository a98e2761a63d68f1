package tui

// ObserveSessions hands every model created by Pick to fn.
func (p *Picker) ObserveSessions(fn func(*Model)) {
	p.observe = fn
}
