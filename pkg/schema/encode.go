package schema

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ntezak/cirq/pkg/domain"
)

// FromCircuit produces the portable document for a circuit: its domains
// (deduplicated by name), the component types actually referenced, the
// instance-to-type map, the boundary ports in order, and all connections as
// owner/port-name tuples.
func FromCircuit(c *domain.Circuit) *Document {
	doc := &Document{
		Name:               c.Name(),
		Domains:            make(map[string]DomainInfo),
		ComponentTypes:     make(map[string]ComponentTypeInfo),
		ComponentInstances: make(map[string]string),
	}

	addDomain := func(d *domain.Domain) {
		doc.Domains[d.Name] = DomainInfo{Causal: d.Causal, One2One: d.One2One}
	}

	for _, p := range c.Ports() {
		addDomain(p.Domain())
		doc.Ports = append(doc.Ports, portInfo(p))
	}

	for _, inst := range c.Instances() {
		doc.ComponentInstances[inst.Name()] = inst.Type().Name()
		for _, p := range inst.Ports() {
			addDomain(p.Domain())
		}
		t := inst.Type()
		if _, seen := doc.ComponentTypes[t.Name()]; seen {
			continue
		}
		info := ComponentTypeInfo{}
		for _, p := range t.Ports() {
			info.Ports = append(info.Ports, portInfo(p))
		}
		doc.ComponentTypes[t.Name()] = info
	}

	for _, cn := range c.Connections() {
		doc.Connections = append(doc.Connections, Link{
			cn.Source().OwnerName(), cn.Source().Name(),
			cn.Target().OwnerName(), cn.Target().Name(),
		})
	}

	return doc
}

func portInfo(p *domain.Port) PortInfo {
	return PortInfo{
		Name:      p.Name(),
		Domain:    p.Domain().Name,
		Direction: string(p.Direction()),
	}
}

// EncodeJSON writes the document as indented JSON. Map keys are emitted in
// sorted order, so the output is canonical for a given document.
func EncodeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// EncodeYAML writes the document as YAML, a convenience re-encoding of the
// same shape as the JSON wire format.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
