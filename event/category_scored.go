package event

var CategoryScored = &categoryScoredEmitter{}

type CategoryScoredPayload struct {
	Category string
	Points   int
	Total    int
}

type CategoryScoredListener interface {
	OnCategoryScored(CategoryScoredPayload)
}

type categoryScoredEmitter struct {
	listeners []CategoryScoredListener
}

func (e *categoryScoredEmitter) AddListener(listener CategoryScoredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *categoryScoredEmitter) Emit(payload CategoryScoredPayload) {
	for _, listener := range e.listeners {
		listener.OnCategoryScored(payload)
	}
}
