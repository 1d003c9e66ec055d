package event

var DiceRolled = &diceRolledEmitter{}

type DiceRolledPayload struct {
	Values    []int
	RollsLeft int
}

type DiceRolledListener interface {
	OnDiceRolled(DiceRolledPayload)
}

type diceRolledEmitter struct {
	listeners []DiceRolledListener
}

func (e *diceRolledEmitter) AddListener(listener DiceRolledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *diceRolledEmitter) Emit(payload DiceRolledPayload) {
	for _, listener := range e.listeners {
		listener.OnDiceRolled(payload)
	}
}
