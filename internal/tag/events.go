package tag

// Event is a notification emitted by the resolver. Listeners type-switch on
// the concrete event.
type Event interface{ isEvent() }

// ActionResolvedEvent carries one effective action. A resolution that
// produces N actions emits N of these, in order; the ordering contract is
// removals-before-apply so a listener applying events sequentially always
// clears conflicting tags first.
type ActionResolvedEvent struct {
	Action Action
}

func (ActionResolvedEvent) isEvent() {}

// SelectedEvent echoes a selection change in the presentational layer. It
// shares the notification channel but involves no resolution logic.
type SelectedEvent struct {
	Tag Tag
}

func (SelectedEvent) isEvent() {}

// FocusEvent echoes a focus change on a rendered tag.
type FocusEvent struct {
	Tag     Tag
	Focused bool
}

func (FocusEvent) isEvent() {}

// Sink receives resolver notifications.
type Sink interface {
	OnEvent(ev Event)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ev Event)

// OnEvent executes f(ev).
func (f SinkFunc) OnEvent(ev Event) {
	if f != nil {
		f(ev)
	}
}
