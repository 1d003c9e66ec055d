package event

var DieToggled = &dieToggledEmitter{}

type DieToggledPayload struct {
	Index  int
	Value  int
	Frozen bool
}

type DieToggledListener interface {
	OnDieToggled(DieToggledPayload)
}

type dieToggledEmitter struct {
	listeners []DieToggledListener
}

func (e *dieToggledEmitter) AddListener(listener DieToggledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *dieToggledEmitter) Emit(payload DieToggledPayload) {
	for _, listener := range e.listeners {
		listener.OnDieToggled(payload)
	}
}
