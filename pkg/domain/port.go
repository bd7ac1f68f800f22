package domain

import "fmt"

// Direction describes how a port participates in causal connections.
type Direction string

const (
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
	DirectionInOut Direction = "inout"
)

// Valid reports whether d is one of the three known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionIn, DirectionOut, DirectionInOut:
		return true
	}
	return false
}

// Role is the resolved connection role of a port within a circuit. Boundary
// ports invert: a boundary "in" feeds the inside of the circuit and therefore
// acts as a source, a boundary "out" acts as a sink.
type Role int

const (
	RoleSource Role = iota
	RoleSink
	RoleBidirectional
)

func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleSink:
		return "sink"
	default:
		return "bidirectional"
	}
}

// portOwner is implemented by every element that can own ports:
// ComponentType, ComponentInstance and Circuit.
type portOwner interface {
	ownerName() string
}

// Port is a typed connection point. Every port belongs to exactly one owner
// at a time; reusing a port under another owner requires Clone.
type Port struct {
	name      string
	domain    *Domain
	direction Direction
	owner     portOwner
}

// NewPort creates an unowned port. For causal domains the direction must be
// "in" or "out"; for acausal domains the direction is normalized to "inout"
// regardless of the requested value.
func NewPort(name string, d *Domain, dir Direction) (*Port, error) {
	if name == "" {
		return nil, &DirectionError{Port: name, Reason: "port name must not be empty"}
	}
	if d == nil {
		return nil, &UnknownDomainError{Name: ""}
	}
	if !dir.Valid() {
		return nil, &DirectionError{Port: name, Reason: fmt.Sprintf("invalid direction %q", dir)}
	}
	if d.Causal {
		if dir == DirectionInOut {
			return nil, &DirectionError{Port: name, Reason: "causal domains only allow input and output ports"}
		}
	} else {
		dir = DirectionInOut
	}
	return &Port{name: name, domain: d, direction: dir}, nil
}

// Name returns the port name, unique within its owner.
func (p *Port) Name() string { return p.name }

// Domain returns the shared domain the port belongs to.
func (p *Port) Domain() *Domain { return p.domain }

// Direction returns the declared direction of the port.
func (p *Port) Direction() Direction { return p.direction }

// OwnerName returns the name of the current owner, or "" for an unowned port.
func (p *Port) OwnerName() string {
	if p.owner == nil {
		return ""
	}
	return p.owner.ownerName()
}

// Owned reports whether the port is currently attached to an owner.
func (p *Port) Owned() bool { return p.owner != nil }

// Clone produces a new, unowned port with the same name, domain and direction.
// Cloning is the only way to reuse a port under a new owner.
func (p *Port) Clone() *Port {
	return &Port{name: p.name, domain: p.domain, direction: p.direction}
}

// CloneAs is Clone with a different name.
func (p *Port) CloneAs(name string) *Port {
	return &Port{name: name, domain: p.domain, direction: p.direction}
}

// String renders the port as "owner.name", or just the name while unowned.
func (p *Port) String() string {
	if p.owner != nil {
		return p.owner.ownerName() + "." + p.name
	}
	return p.name
}

// attach binds the port to an owner. The port must be unowned.
func (p *Port) attach(o portOwner) error {
	if p.owner != nil {
		return &PortOwnershipError{Port: p.String(), Owner: p.owner.ownerName()}
	}
	p.owner = o
	return nil
}

func (p *Port) detach() { p.owner = nil }

// ClonePorts clones a list of ports in order.
func ClonePorts(ports []*Port) []*Port {
	out := make([]*Port, len(ports))
	for i, p := range ports {
		out[i] = p.Clone()
	}
	return out
}

// Inputs creates named input ports for a causal domain.
func Inputs(d *Domain, names ...string) ([]*Port, error) {
	if !d.Causal {
		return nil, &DomainConfigError{Name: d.Name, Reason: "input ports require a causal domain"}
	}
	return makePorts(d, DirectionIn, names)
}

// Outputs creates named output ports for a causal domain.
func Outputs(d *Domain, names ...string) ([]*Port, error) {
	if !d.Causal {
		return nil, &DomainConfigError{Name: d.Name, Reason: "output ports require a causal domain"}
	}
	return makePorts(d, DirectionOut, names)
}

// Inouts creates named bidirectional ports for an acausal domain.
func Inouts(d *Domain, names ...string) ([]*Port, error) {
	if d.Causal {
		return nil, &DomainConfigError{Name: d.Name, Reason: "inout ports require an acausal domain"}
	}
	return makePorts(d, DirectionInOut, names)
}

func makePorts(d *Domain, dir Direction, names []string) ([]*Port, error) {
	out := make([]*Port, 0, len(names))
	for _, n := range names {
		p, err := NewPort(n, d, dir)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
