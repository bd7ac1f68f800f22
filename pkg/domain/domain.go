package domain

// Domain describes a connection class for ports, such as electrical wires,
// propagating optical modes, or signal flow in a control system.
//
// Causal domains carry directed connections: their ports must be inputs or
// outputs, and a connection always runs from an effective source to an
// effective sink. One2One additionally limits every port of the domain to a
// single connection; it is only meaningful for causal domains and a
// definition combining One2One with an acausal domain is rejected.
type Domain struct {
	Name    string
	Causal  bool
	One2One bool
}

// Registry holds the set of domains defined for one modeling session.
// Domains are immutable after definition and are looked up by name.
type Registry struct {
	domains map[string]*Domain
	order   []string
}

// NewRegistry creates an empty domain registry.
func NewRegistry() *Registry {
	return &Registry{domains: make(map[string]*Domain)}
}

// Define registers a new domain under a unique name.
func (r *Registry) Define(name string, causal, one2one bool) (*Domain, error) {
	if name == "" {
		return nil, &DomainConfigError{Name: name, Reason: "name must not be empty"}
	}
	if one2one && !causal {
		return nil, &DomainConfigError{Name: name, Reason: "only causal domains can be one-to-one"}
	}
	if _, ok := r.domains[name]; ok {
		return nil, &DuplicateDomainError{Name: name}
	}
	d := &Domain{Name: name, Causal: causal, One2One: one2one}
	r.domains[name] = d
	r.order = append(r.order, name)
	return d, nil
}

// Lookup resolves a previously defined domain by name.
func (r *Registry) Lookup(name string) (*Domain, error) {
	d, ok := r.domains[name]
	if !ok {
		return nil, &UnknownDomainError{Name: name}
	}
	return d, nil
}

// Domains returns all defined domains in definition order.
func (r *Registry) Domains() []*Domain {
	out := make([]*Domain, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.domains[name])
	}
	return out
}
