package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/ntezak/cirq/pkg/domain"
)

// DecodeJSON reads a portable circuit document from JSON. The input is first
// decoded generically and then mapped onto the typed document so that shape
// problems surface as SchemaError rather than as raw unmarshal errors.
func DecodeJSON(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, wrapf("document", err, "not a JSON object")
	}
	return FromMap(raw)
}

// DecodeYAML reads a portable circuit document from YAML.
func DecodeYAML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, wrapf("document", err, "not a YAML mapping")
	}
	return FromMap(raw)
}

// FromMap maps a generically decoded document onto the typed Document.
// Unknown fields are ignored, mirroring the tolerant reader side of the wire
// contract; missing or mistyped fields are reported as SchemaError.
func FromMap(raw map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &doc,
		TagName:    "json",
		DecodeHook: linkDecodeHook,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, wrapf("document", err, "malformed document")
	}
	return &doc, nil
}

// linkDecodeHook converts a generic 4-element sequence into a Link, with
// strict length and element-type checks.
func linkDecodeHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Link{}) {
		return data, nil
	}
	raw, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("connection entry must be a sequence, got %T", data)
	}
	if len(raw) != 4 {
		return nil, fmt.Errorf("connection entry must have exactly 4 elements [source_owner, source_port, target_owner, target_port], got %d", len(raw))
	}
	var l Link
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("connection entry element %d must be a string, got %T", i, v)
		}
		l[i] = s
	}
	return l, nil
}

// Build reconstructs a circuit from the document, re-validating every
// connection through the same rules as Circuit.Connect. A document encoding
// an invalid graph is rejected; no partial circuit is ever returned.
//
// Domains are resolved against reg, which may be nil for a fresh registry.
// A domain already defined in reg must carry the same flags as the document,
// otherwise the document is rejected.
func (d *Document) Build(reg *domain.Registry) (*domain.Circuit, error) {
	if d.Name == "" {
		return nil, errf("name", "required")
	}
	if reg == nil {
		reg = domain.NewRegistry()
	}

	domains, err := d.resolveDomains(reg)
	if err != nil {
		return nil, err
	}

	makePort := func(field string, pi PortInfo) (*domain.Port, error) {
		if pi.Name == "" {
			return nil, errf(field, "port name required")
		}
		dom, ok := domains[pi.Domain]
		if !ok {
			return nil, errf(field, "port %q references undeclared domain %q", pi.Name, pi.Domain)
		}
		p, err := domain.NewPort(pi.Name, dom, domain.Direction(pi.Direction))
		if err != nil {
			return nil, wrapf(field, err, "invalid port %q", pi.Name)
		}
		return p, nil
	}

	types := make(map[string]*domain.ComponentType, len(d.ComponentTypes))
	for _, name := range sortedKeys(d.ComponentTypes) {
		field := fmt.Sprintf("component_types[%s]", name)
		info := d.ComponentTypes[name]
		ports := make([]*domain.Port, 0, len(info.Ports))
		for _, pi := range info.Ports {
			p, err := makePort(field, pi)
			if err != nil {
				return nil, err
			}
			ports = append(ports, p)
		}
		t, err := domain.NewComponentType(name, ports)
		if err != nil {
			return nil, wrapf(field, err, "invalid component type")
		}
		types[name] = t
	}

	circuit := domain.NewCircuit(d.Name)

	for i, pi := range d.Ports {
		field := fmt.Sprintf("ports[%d]", i)
		p, err := makePort(field, pi)
		if err != nil {
			return nil, err
		}
		if err := circuit.AddPort(p); err != nil {
			return nil, wrapf(field, err, "invalid boundary port %q", pi.Name)
		}
	}

	for _, name := range sortedKeys(d.ComponentInstances) {
		field := fmt.Sprintf("component_instances[%s]", name)
		typeName := d.ComponentInstances[name]
		t, ok := types[typeName]
		if !ok {
			return nil, errf(field, "unknown component type %q", typeName)
		}
		if err := circuit.AddInstance(t.MakeInstance(name)); err != nil {
			return nil, wrapf(field, err, "cannot attach instance")
		}
	}

	resolve := func(field, owner, port string) (*domain.Port, error) {
		if owner == d.Name {
			p, err := circuit.Port(port)
			if err != nil {
				return nil, wrapf(field, err, "unknown boundary port %q", port)
			}
			return p, nil
		}
		inst, err := circuit.Instance(owner)
		if err != nil {
			return nil, wrapf(field, err, "unknown owner %q", owner)
		}
		p, err := inst.Port(port)
		if err != nil {
			return nil, wrapf(field, err, "unknown port %q on %q", port, owner)
		}
		return p, nil
	}

	for i, l := range d.Connections {
		field := fmt.Sprintf("connections[%d]", i)
		src, err := resolve(field, l.SourceOwner(), l.SourcePort())
		if err != nil {
			return nil, err
		}
		dst, err := resolve(field, l.TargetOwner(), l.TargetPort())
		if err != nil {
			return nil, err
		}
		if _, err := circuit.Connect(src, dst); err != nil {
			return nil, wrapf(field, err, "invalid connection")
		}
	}

	return circuit, nil
}

// resolveDomains checks every declared domain against the registry and
// defines the missing ones. All declarations are validated before the first
// definition so a rejected document does not grow the registry.
func (d *Document) resolveDomains(reg *domain.Registry) (map[string]*domain.Domain, error) {
	domains := make(map[string]*domain.Domain, len(d.Domains))
	names := sortedKeys(d.Domains)

	for _, name := range names {
		info := d.Domains[name]
		field := fmt.Sprintf("domains[%s]", name)
		if name == "" {
			return nil, errf("domains", "domain name must not be empty")
		}
		if info.One2One && !info.Causal {
			return nil, errf(field, "only causal domains can be one-to-one")
		}
		if existing, err := reg.Lookup(name); err == nil {
			if existing.Causal != info.Causal || existing.One2One != info.One2One {
				return nil, errf(field, "conflicts with already-defined domain %q", name)
			}
			domains[name] = existing
		}
	}

	for _, name := range names {
		if _, ok := domains[name]; ok {
			continue
		}
		info := d.Domains[name]
		dom, err := reg.Define(name, info.Causal, info.One2One)
		if err != nil {
			return nil, wrapf(fmt.Sprintf("domains[%s]", name), err, "cannot define domain")
		}
		domains[name] = dom
	}

	return domains, nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
