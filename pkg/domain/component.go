package domain

// ComponentType declares a reusable component interface: a named, ordered set
// of template ports plus optional parameter names. Instances are produced via
// MakeInstance, which clones every template port for the new instance.
type ComponentType struct {
	name   string
	ports  []*Port
	byName map[string]*Port
	params []string
}

// NewComponentType creates a component type and takes ownership of the given
// ports. The ports must be unowned and uniquely named.
func NewComponentType(name string, ports []*Port, params ...string) (*ComponentType, error) {
	t := &ComponentType{name: name, params: params}
	if err := t.adopt(ports); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *ComponentType) adopt(ports []*Port) error {
	byName := make(map[string]*Port, len(ports))
	for _, p := range ports {
		if _, dup := byName[p.Name()]; dup {
			return &DuplicatePortNameError{Owner: t.name, Port: p.Name()}
		}
		byName[p.Name()] = p
	}
	// Validate-then-commit: attach only after all names checked.
	for i, p := range ports {
		if err := p.attach(t); err != nil {
			for _, q := range ports[:i] {
				q.detach()
			}
			return err
		}
	}
	t.ports = ports
	t.byName = byName
	return nil
}

func (t *ComponentType) ownerName() string { return t.name }

// Name returns the type name.
func (t *ComponentType) Name() string { return t.name }

// Params returns the declared parameter names.
func (t *ComponentType) Params() []string { return t.params }

// Ports returns the template ports in declaration order.
func (t *ComponentType) Ports() []*Port {
	out := make([]*Port, len(t.ports))
	copy(out, t.ports)
	return out
}

// Port resolves a template port by name.
func (t *ComponentType) Port(name string) (*Port, error) {
	p, ok := t.byName[name]
	if !ok {
		return nil, &UnknownPortError{Owner: t.name, Port: name}
	}
	return p, nil
}

// PortsForDomain returns the template ports of the given domain, in order.
func (t *ComponentType) PortsForDomain(d *Domain) []*Port {
	return filterByDomain(t.ports, d)
}

// MakeInstance creates a new instance of this type, cloning all template
// ports and binding the clones to the instance. Name uniqueness within a
// circuit is enforced later, when the instance is attached.
func (t *ComponentType) MakeInstance(name string) *ComponentInstance {
	inst := &ComponentInstance{name: name, ctype: t}
	clones := ClonePorts(t.ports)
	byName := make(map[string]*Port, len(clones))
	for _, p := range clones {
		p.owner = inst
		byName[p.Name()] = p
	}
	inst.ports = clones
	inst.byName = byName
	return inst
}

// ComponentInstance is a concrete component placed in a circuit. It owns
// clones of its type's ports and keeps a non-owning reference to the type
// for lookup, labeling and serialization.
type ComponentInstance struct {
	name    string
	ctype   *ComponentType
	ports   []*Port
	byName  map[string]*Port
	circuit *Circuit
}

func (c *ComponentInstance) ownerName() string { return c.name }

// Name returns the instance name, unique within its circuit.
func (c *ComponentInstance) Name() string { return c.name }

// Type returns the originating component type.
func (c *ComponentInstance) Type() *ComponentType { return c.ctype }

// Circuit returns the owning circuit, or nil while unattached.
func (c *ComponentInstance) Circuit() *Circuit { return c.circuit }

// Ports returns the instance's ports in declaration order.
func (c *ComponentInstance) Ports() []*Port {
	out := make([]*Port, len(c.ports))
	copy(out, c.ports)
	return out
}

// Port resolves one of the instance's ports by name.
func (c *ComponentInstance) Port(name string) (*Port, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, &UnknownPortError{Owner: c.name, Port: name}
	}
	return p, nil
}

// PortsForDomain returns the instance's ports of the given domain, in order.
func (c *ComponentInstance) PortsForDomain(d *Domain) []*Port {
	return filterByDomain(c.ports, d)
}

func filterByDomain(ports []*Port, d *Domain) []*Port {
	var out []*Port
	for _, p := range ports {
		if p.Domain().Name == d.Name {
			out = append(out, p)
		}
	}
	return out
}
