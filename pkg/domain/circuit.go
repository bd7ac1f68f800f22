package domain

import "sync"

// Circuit is the top-level container: it owns a set of boundary ports (the
// circuit's external interface), a set of component instances, and the
// connections linking their ports.
//
// The model assumes a single mutator at a time; all exported methods
// nevertheless serialize through one mutex so that a circuit shared with a
// concurrent reader (for example a view layer polling Nets) stays consistent.
type Circuit struct {
	mu sync.Mutex

	name        string
	ports       []*Port // boundary ports, ordered
	instances   []*ComponentInstance
	instByName  map[string]*ComponentInstance
	connections []*Connection

	// topoVersion counts topology mutations. Net results are cached per
	// domain and reused only while the version is unchanged.
	topoVersion uint64
	netCache    map[string]netCacheEntry
}

// NewCircuit creates an empty circuit.
func NewCircuit(name string) *Circuit {
	return &Circuit{
		name:       name,
		instByName: make(map[string]*ComponentInstance),
		netCache:   make(map[string]netCacheEntry),
	}
}

func (c *Circuit) ownerName() string { return c.name }

// Name returns the circuit name.
func (c *Circuit) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Rename changes the circuit name.
func (c *Circuit) Rename(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

// TopologyVersion returns the current topology mutation counter. It advances
// on every connection, instance or boundary-port change and never on pure
// attribute changes such as renames.
func (c *Circuit) TopologyVersion() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.topoVersion
}

func (c *Circuit) bumpTopology() { c.topoVersion++ }

// --- Boundary ports ---

// AddPort attaches an unowned port to the circuit boundary. Boundary ports
// invert their directional role: an "in" boundary port acts as a source for
// the circuit's interior, an "out" boundary port as a sink.
func (c *Circuit) AddPort(p *Port) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, q := range c.ports {
		if q.Name() == p.Name() {
			return &DuplicatePortNameError{Owner: c.name, Port: p.Name()}
		}
	}
	if err := p.attach(c); err != nil {
		return err
	}
	c.ports = append(c.ports, p)
	c.bumpTopology()
	return nil
}

// Ports returns the boundary ports in order.
func (c *Circuit) Ports() []*Port {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Port, len(c.ports))
	copy(out, c.ports)
	return out
}

// Port resolves a boundary port by name.
func (c *Circuit) Port(name string) (*Port, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boundaryPort(name)
}

func (c *Circuit) boundaryPort(name string) (*Port, error) {
	for _, p := range c.ports {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, &UnknownPortError{Owner: c.name, Port: name}
}

// PortsForDomain returns the boundary ports of the given domain, in order.
func (c *Circuit) PortsForDomain(d *Domain) []*Port {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filterByDomain(c.ports, d)
}

// RemovePort detaches a boundary port and cascades: every connection touching
// it is removed. The removed connections are returned so callers can react.
func (c *Circuit) RemovePort(name string) ([]*Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.boundaryPort(name)
	if err != nil {
		return nil, err
	}
	removed := c.dropConnections(func(cn *Connection) bool { return cn.touches(p) })
	for i, q := range c.ports {
		if q == p {
			c.ports = append(c.ports[:i], c.ports[i+1:]...)
			break
		}
	}
	p.detach()
	c.bumpTopology()
	return removed, nil
}

// RenamePort renames a boundary port. The new name must be unused on the
// boundary. Renaming does not touch the topology version.
func (c *Circuit) RenamePort(oldName, newName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.boundaryPort(oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if q, _ := c.boundaryPort(newName); q != nil {
		return &DuplicatePortNameError{Owner: c.name, Port: newName}
	}
	p.name = newName
	return nil
}

// MovePort moves a boundary port to a new index in the boundary order.
// The order is part of the serialized interface and of net ordering, so the
// topology version advances.
func (c *Circuit) MovePort(name string, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.boundaryPort(name)
	if err != nil {
		return err
	}
	cur := -1
	for i, q := range c.ports {
		if q == p {
			cur = i
			break
		}
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.ports) {
		index = len(c.ports) - 1
	}
	if cur == index {
		return nil
	}
	c.ports = append(c.ports[:cur], c.ports[cur+1:]...)
	rest := append([]*Port{p}, c.ports[index:]...)
	c.ports = append(c.ports[:index:index], rest...)
	c.bumpTopology()
	return nil
}

// --- Component instances ---

// AddInstance attaches a component instance to the circuit. The instance must
// not already belong to a circuit and its name must be unique here.
func (c *Circuit) AddInstance(inst *ComponentInstance) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if inst.circuit != nil {
		return ErrInstanceAttached
	}
	if _, dup := c.instByName[inst.Name()]; dup {
		return &DuplicateInstanceNameError{Circuit: c.name, Instance: inst.Name()}
	}
	inst.circuit = c
	c.instances = append(c.instances, inst)
	c.instByName[inst.Name()] = inst
	c.bumpTopology()
	return nil
}

// Instances returns the component instances in attachment order.
func (c *Circuit) Instances() []*ComponentInstance {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ComponentInstance, len(c.instances))
	copy(out, c.instances)
	return out
}

// Instance resolves an instance by name.
func (c *Circuit) Instance(name string) (*ComponentInstance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, ok := c.instByName[name]
	if !ok {
		return nil, ErrInstanceNotFound
	}
	return inst, nil
}

// RemoveInstance detaches an instance and cascades: every connection touching
// one of its ports is removed. The removed connections are returned as a
// batch so a caller (for example a view layer) can react to the full result.
func (c *Circuit) RemoveInstance(name string) ([]*Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, ok := c.instByName[name]
	if !ok {
		return nil, ErrInstanceNotFound
	}
	removed := c.dropConnections(func(cn *Connection) bool {
		return cn.source.owner == inst || cn.target.owner == inst
	})
	for i, other := range c.instances {
		if other == inst {
			c.instances = append(c.instances[:i], c.instances[i+1:]...)
			break
		}
	}
	delete(c.instByName, name)
	inst.circuit = nil
	c.bumpTopology()
	return removed, nil
}

// RenameInstance renames an attached instance, keeping name uniqueness.
// Renaming does not touch the topology version.
func (c *Circuit) RenameInstance(oldName, newName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, ok := c.instByName[oldName]
	if !ok {
		return ErrInstanceNotFound
	}
	if oldName == newName {
		return nil
	}
	if _, dup := c.instByName[newName]; dup {
		return &DuplicateInstanceNameError{Circuit: c.name, Instance: newName}
	}
	delete(c.instByName, oldName)
	inst.name = newName
	c.instByName[newName] = inst
	return nil
}

// --- Connections ---

// EffectiveRole resolves the connection role of a port relative to this
// circuit, applying the boundary-inversion rule: a boundary "in" port is a
// source toward the interior, a boundary "out" port a sink. Instance ports
// keep their plain reading.
func (c *Circuit) EffectiveRole(p *Port) Role {
	switch p.Direction() {
	case DirectionInOut:
		return RoleBidirectional
	case DirectionIn:
		if p.owner == c {
			return RoleSource
		}
		return RoleSink
	default: // DirectionOut
		if p.owner == c {
			return RoleSink
		}
		return RoleSource
	}
}

// Connect validates and adds a connection between two ports. For causal
// domains the pair is oriented source-to-sink automatically, so arguments
// may be passed in either order. On any validation failure the circuit is
// left untouched.
func (c *Circuit) Connect(a, b *Port) (*Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a == b {
		return nil, &SelfConnectionError{Port: a.String()}
	}
	for _, p := range []*Port{a, b} {
		if !c.ownsPort(p) {
			return nil, &ForeignPortError{Circuit: c.name, Port: p.String()}
		}
	}
	if a.Domain().Name != b.Domain().Name {
		return nil, &DomainMismatchError{
			Source:       a.String(),
			Target:       b.String(),
			SourceDomain: a.Domain().Name,
			TargetDomain: b.Domain().Name,
		}
	}

	d := a.Domain()
	src, dst := a, b
	if d.Causal {
		switch {
		case c.EffectiveRole(a) == RoleSource && c.EffectiveRole(b) == RoleSink:
			// already oriented
		case c.EffectiveRole(b) == RoleSource && c.EffectiveRole(a) == RoleSink:
			src, dst = b, a
		default:
			return nil, &DirectionError{
				Port:   a.String(),
				Reason: "no valid source/sink orientation with " + b.String(),
			}
		}
	}

	for _, cn := range c.connections {
		if cn.joins(a, b) {
			return nil, &DuplicateConnectionError{Source: src.String(), Target: dst.String()}
		}
	}
	if d.One2One {
		for _, p := range []*Port{src, dst} {
			if c.degree(p) > 0 {
				return nil, &FanOutViolationError{Port: p.String(), Domain: d.Name}
			}
		}
	}

	cn := &Connection{source: src, target: dst}
	c.connections = append(c.connections, cn)
	c.bumpTopology()
	return cn, nil
}

// RemoveConnection detaches a single connection.
func (c *Circuit) RemoveConnection(cn *Connection) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, other := range c.connections {
		if other == cn {
			c.connections = append(c.connections[:i], c.connections[i+1:]...)
			c.bumpTopology()
			return nil
		}
	}
	return ErrConnectionNotFound
}

// Connections returns the connections in insertion order.
func (c *Circuit) Connections() []*Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Connection, len(c.connections))
	copy(out, c.connections)
	return out
}

// ownsPort reports whether p is a boundary port of c or a port of one of
// c's attached instances.
func (c *Circuit) ownsPort(p *Port) bool {
	if p.owner == c {
		return true
	}
	if inst, ok := p.owner.(*ComponentInstance); ok {
		return inst.circuit == c
	}
	return false
}

// degree counts connections with p as an endpoint, across both roles.
func (c *Circuit) degree(p *Port) int {
	n := 0
	for _, cn := range c.connections {
		if cn.touches(p) {
			n++
		}
	}
	return n
}

// dropConnections removes every connection matching the predicate and
// returns the removed set in insertion order.
func (c *Circuit) dropConnections(match func(*Connection) bool) []*Connection {
	var removed []*Connection
	kept := c.connections[:0]
	for _, cn := range c.connections {
		if match(cn) {
			removed = append(removed, cn)
		} else {
			kept = append(kept, cn)
		}
	}
	c.connections = kept
	return removed
}
