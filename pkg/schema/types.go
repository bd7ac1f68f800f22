package schema

// Document is the portable, name-based representation of a circuit. It
// preserves no object identity: domains, component types and instances are
// keyed by name, and connections reference their endpoints as
// (owner, port name) pairs. The field names below are the stable wire
// contract for external tools.
type Document struct {
	Name               string                       `json:"name" yaml:"name"`
	Domains            map[string]DomainInfo        `json:"domains" yaml:"domains"`
	Ports              []PortInfo                   `json:"ports" yaml:"ports"`
	ComponentTypes     map[string]ComponentTypeInfo `json:"component_types" yaml:"component_types"`
	ComponentInstances map[string]string            `json:"component_instances" yaml:"component_instances"`
	Connections        []Link                       `json:"connections" yaml:"connections"`
}

// DomainInfo carries the two behavioral flags of a domain.
type DomainInfo struct {
	Causal  bool `json:"causal" yaml:"causal"`
	One2One bool `json:"one2one" yaml:"one2one"`
}

// PortInfo describes one port of a component type or of the circuit boundary.
type PortInfo struct {
	Name      string `json:"name" yaml:"name"`
	Domain    string `json:"domain" yaml:"domain"`
	Direction string `json:"direction" yaml:"direction"`
}

// ComponentTypeInfo describes a component type's port interface.
type ComponentTypeInfo struct {
	Ports []PortInfo `json:"ports" yaml:"ports"`
}

// Link encodes one connection as the 4-tuple
// [source_owner, source_port, target_owner, target_port], where an owner is
// either the circuit's own name (boundary port) or an instance name.
type Link [4]string

// SourceOwner returns the owner of the source endpoint.
func (l Link) SourceOwner() string { return l[0] }

// SourcePort returns the port name of the source endpoint.
func (l Link) SourcePort() string { return l[1] }

// TargetOwner returns the owner of the target endpoint.
func (l Link) TargetOwner() string { return l[2] }

// TargetPort returns the port name of the target endpoint.
func (l Link) TargetPort() string { return l[3] }
