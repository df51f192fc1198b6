package guardrail

import "fmt"

// Registry maps input-type identifiers to their ordered constraint
// sequences. It follows a build-then-freeze discipline: populate it during
// initialization, then share it for unsynchronized concurrent reads.
// Register is not safe to call concurrently with Lookup.
type Registry struct {
	types map[string][]Constraint
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string][]Constraint)}
}

// Register associates typeID with the given constraint sequence. It fails
// with ErrDuplicateRegistration when typeID is already present, and with
// ErrInvalidConstraint when any constraint carries inconsistent parameters.
// Constraint order is preserved and drives evaluation order.
func (r *Registry) Register(typeID string, constraints ...Constraint) error {
	if typeID == "" {
		return fmt.Errorf("%w: type identifier must not be empty", ErrInvalidConstraint)
	}
	if _, exists := r.types[typeID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, typeID)
	}
	for _, c := range constraints {
		if err := c.validate(); err != nil {
			return fmt.Errorf("type %q, path %q: %w", typeID, c.targetPath, err)
		}
	}

	stored := make([]Constraint, len(constraints))
	copy(stored, constraints)
	r.types[typeID] = stored
	return nil
}

// MustRegister is Register for startup wiring; it panics on error so that
// a misconfigured registry prevents the process from serving at all.
func (r *Registry) MustRegister(typeID string, constraints ...Constraint) {
	if err := r.Register(typeID, constraints...); err != nil {
		panic(fmt.Sprintf("guardrail: %v", err))
	}
}

// Lookup returns the constraint sequence registered for typeID, or
// ErrUnknownType. The returned slice is shared and must not be mutated.
func (r *Registry) Lookup(typeID string) ([]Constraint, error) {
	constraints, ok := r.types[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeID)
	}
	return constraints, nil
}

// Types returns the registered type identifiers in unspecified order.
func (r *Registry) Types() []string {
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	return ids
}
