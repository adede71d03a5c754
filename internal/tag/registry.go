package tag

import "sync"

// Registry is the single source of truth for tag policy. Lookups on tags
// with no policy answer "not applicable / not removable / no negations"
// rather than failing; installing the permissive default is an explicit
// opt-in step (RegisterDefault), never a side effect of a read.
type Registry struct {
	mu       sync.RWMutex
	policies map[Tag]Policy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{policies: map[Tag]Policy{}}
}

// Register installs or replaces the policy for a tag. Replacing an existing
// policy, including one seeded at construction, is allowed. The only
// rejected inputs are configuration mistakes: blank names and self-negating
// policies. On error the stored mapping is untouched.
func (r *Registry) Register(t Tag, p Policy) error {
	if err := p.Validate(t); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[t] = p.clone()
	return nil
}

// RegisterDefault installs the permissive default policy for a tag that has
// none. Idempotent: an existing policy, custom or default, is never reset.
func (r *Registry) RegisterDefault(t Tag) error {
	if t == "" {
		return Policy{}.Validate(t)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.policies[t]; exists {
		return nil
	}
	r.policies[t] = DefaultPolicy()
	return nil
}

// Lookup returns the stored policy and whether one exists.
func (r *Registry) Lookup(t Tag) (Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[t]
	if !ok {
		return Policy{}, false
	}
	return p.clone(), true
}

// IsApplicable reports whether a policy exists for the tag and permits
// applying it. Tags without a policy are not applicable under this query.
func (r *Registry) IsApplicable(t Tag) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.policies[t].Applicable
}

// IsRemovable is the removal counterpart of IsApplicable.
func (r *Registry) IsRemovable(t Tag) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.policies[t].Removable
}

// NegationsFor returns the tags cleared when t is applied, in registration
// order. Nil when the tag has no policy or an empty negation list.
func (r *Registry) NegationsFor(t Tag) []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[t]
	if !ok || len(p.Negates) == 0 {
		return nil
	}
	return append([]Tag{}, p.Negates...)
}
