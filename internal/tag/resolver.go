package tag

// Resolver translates one requested action into the ordered sequence of
// effective actions the policy table allows, and reports each effective
// action to every subscribed sink. It never mutates assignment state itself;
// whoever owns the authoritative tag set listens and applies the actions.
//
// Resolution is a pure computation over registry state followed by
// synchronous emission. One Resolve call runs to completion before the next;
// confine the resolver and its registry to a single goroutine.
type Resolver struct {
	reg   *Registry
	sinks []Sink
}

// NewResolver wraps a registry. Sinks are attached afterwards via Subscribe.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Subscribe registers a sink for every event the resolver emits. There is no
// unsubscribe: subscriptions live as long as the widget.
func (r *Resolver) Subscribe(s Sink) {
	if s != nil {
		r.sinks = append(r.sinks, s)
	}
}

// Resolve produces the effective actions for one request and emits each as
// an ActionResolvedEvent, in order.
//
// A tag with no registered policy passes through untouched: the single
// requested action is emitted as-is. For registered tags, an apply first
// emits a remove for every negated tag in registration order, then the apply
// itself if the tag is applicable; a non-applicable tag still clears its
// negation set so derived state downstream can recompute, but is never set
// directly. A remove is emitted only when the tag is removable, otherwise
// the request is dropped.
//
// Negated tags are removed directly, not re-resolved, which bounds the
// cascade to one level and keeps mutual-negation tables from looping.
func (r *Resolver) Resolve(t Tag, kind Kind) []Action {
	actions := r.plan(t, kind)
	for _, a := range actions {
		r.emit(ActionResolvedEvent{Action: a})
	}
	return actions
}

func (r *Resolver) plan(t Tag, kind Kind) []Action {
	policy, ok := r.reg.Lookup(t)
	if !ok {
		return []Action{{Tag: t, Kind: kind}}
	}
	switch kind {
	case KindApply:
		actions := make([]Action, 0, len(policy.Negates)+1)
		for _, n := range policy.Negates {
			actions = append(actions, Action{Tag: n, Kind: KindRemove})
		}
		if policy.Applicable {
			actions = append(actions, Action{Tag: t, Kind: KindApply})
		}
		return actions
	case KindRemove:
		if policy.Removable {
			return []Action{{Tag: t, Kind: KindRemove}}
		}
		return nil
	}
	return nil
}

// EmitSelected forwards a selection echo to all sinks.
func (r *Resolver) EmitSelected(t Tag) {
	r.emit(SelectedEvent{Tag: t})
}

// EmitFocus forwards a focus-change echo to all sinks.
func (r *Resolver) EmitFocus(t Tag, focused bool) {
	r.emit(FocusEvent{Tag: t, Focused: focused})
}

func (r *Resolver) emit(ev Event) {
	for _, s := range r.sinks {
		s.OnEvent(ev)
	}
}
