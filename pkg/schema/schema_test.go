package schema_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ntezak/cirq/internal/testutils"
	"github.com/ntezak/cirq/pkg/domain"
	"github.com/ntezak/cirq/pkg/schema"
)

// sampleDocument is a minimal two-domain document: one boundary input and
// output, one Amp instance, two causal connections.
func sampleDocument() *schema.Document {
	return &schema.Document{
		Name: "top",
		Domains: map[string]schema.DomainInfo{
			"signal":     {Causal: true},
			"electrical": {},
		},
		Ports: []schema.PortInfo{
			{Name: "In", Domain: "signal", Direction: "in"},
			{Name: "Out", Domain: "signal", Direction: "out"},
		},
		ComponentTypes: map[string]schema.ComponentTypeInfo{
			"Amp": {Ports: []schema.PortInfo{
				{Name: "In1", Domain: "signal", Direction: "in"},
				{Name: "Out1", Domain: "signal", Direction: "out"},
				{Name: "Gnd", Domain: "electrical", Direction: "inout"},
			}},
		},
		ComponentInstances: map[string]string{"a1": "Amp"},
		Connections: []schema.Link{
			{"top", "In", "a1", "In1"},
			{"a1", "Out1", "top", "Out"},
		},
	}
}

func TestBuildSampleDocument(t *testing.T) {
	c, err := sampleDocument().Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "top" {
		t.Errorf("Name() = %q, want top", c.Name())
	}
	if got := len(c.Ports()); got != 2 {
		t.Errorf("boundary has %d ports, want 2", got)
	}
	if got := len(c.Instances()); got != 1 {
		t.Errorf("%d instances, want 1", got)
	}
	if got := len(c.Connections()); got != 2 {
		t.Errorf("%d connections, want 2", got)
	}
}

func TestRoundTripJSON(t *testing.T) {
	mz := testutils.BuildMachZehnder(t)
	doc := schema.FromCircuit(mz.Circuit)

	var buf bytes.Buffer
	if err := schema.EncodeJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}
	decoded, err := schema.DecodeJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(doc, decoded) {
		t.Fatalf("decoded document differs:\n got %+v\nwant %+v", decoded, doc)
	}

	reg := domain.NewRegistry()
	rebuilt, err := decoded.Build(reg)
	if err != nil {
		t.Fatal(err)
	}
	again := schema.FromCircuit(rebuilt)
	if !reflect.DeepEqual(doc, again) {
		t.Fatalf("re-encoded document differs:\n got %+v\nwant %+v", again, doc)
	}

	// The rebuilt circuit reproduces the original partition.
	fieldmode, err := reg.Lookup("fieldmode")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(rebuilt.Nets(fieldmode)); got != 7 {
		t.Errorf("rebuilt circuit has %d fieldmode nets, want 7", got)
	}
}

func TestRoundTripYAML(t *testing.T) {
	mz := testutils.BuildMachZehnder(t)
	doc := schema.FromCircuit(mz.Circuit)

	var buf bytes.Buffer
	if err := schema.EncodeYAML(&buf, doc); err != nil {
		t.Fatal(err)
	}
	decoded, err := schema.DecodeYAML(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(doc, decoded) {
		t.Fatalf("decoded YAML document differs:\n got %+v\nwant %+v", decoded, doc)
	}
}

func TestDecodeJSONRejectsNonObject(t *testing.T) {
	_, err := schema.DecodeJSON(strings.NewReader(`[1, 2, 3]`))
	var schemaErr *schema.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("DecodeJSON(array) error = %v, want SchemaError", err)
	}
}

func TestFromMapLinks(t *testing.T) {
	base := func(conns any) map[string]any {
		return map[string]any{
			"name":        "top",
			"connections": conns,
		}
	}

	tests := []struct {
		name    string
		raw     map[string]any
		wantErr string
	}{
		{
			name: "well-formed link",
			raw:  base([]any{[]any{"top", "In", "a1", "In1"}}),
		},
		{
			name:    "three elements",
			raw:     base([]any{[]any{"top", "In", "a1"}}),
			wantErr: "exactly 4 elements",
		},
		{
			name:    "five elements",
			raw:     base([]any{[]any{"top", "In", "a1", "In1", "extra"}}),
			wantErr: "exactly 4 elements",
		},
		{
			name:    "non-string element",
			raw:     base([]any{[]any{"top", "In", "a1", 7}}),
			wantErr: "must be a string",
		},
		{
			name: "unknown fields are ignored",
			raw: map[string]any{
				"name":       "top",
				"apocrypha":  true,
				"extensions": map[string]any{"x": 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := schema.FromMap(tt.raw)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("FromMap error = %v", err)
				}
				if doc.Name != "top" {
					t.Errorf("Name = %q, want top", doc.Name)
				}
				return
			}
			var schemaErr *schema.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("FromMap error = %v, want SchemaError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*schema.Document)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(d *schema.Document) { d.Name = "" },
			wantField: "name",
		},
		{
			name: "undeclared domain",
			mutate: func(d *schema.Document) {
				d.Ports[0].Domain = "optical"
			},
			wantField: "ports[0]",
		},
		{
			name: "invalid direction",
			mutate: func(d *schema.Document) {
				d.Ports[1].Direction = "sideways"
			},
			wantField: "ports[1]",
		},
		{
			name: "causal domain with inout port",
			mutate: func(d *schema.Document) {
				d.Ports[0].Direction = "inout"
			},
			wantField: "ports[0]",
		},
		{
			name: "one2one without causal",
			mutate: func(d *schema.Document) {
				d.Domains["electrical"] = schema.DomainInfo{One2One: true}
			},
			wantField: "domains[electrical]",
		},
		{
			name: "unknown component type",
			mutate: func(d *schema.Document) {
				d.ComponentInstances["a1"] = "Mixer"
			},
			wantField: "component_instances[a1]",
		},
		{
			name: "duplicate port names in type",
			mutate: func(d *schema.Document) {
				info := d.ComponentTypes["Amp"]
				info.Ports = append(info.Ports, info.Ports[0])
				d.ComponentTypes["Amp"] = info
			},
			wantField: "component_types[Amp]",
		},
		{
			name: "connection names unknown owner",
			mutate: func(d *schema.Document) {
				d.Connections[0][2] = "ghost"
			},
			wantField: "connections[0]",
		},
		{
			name: "connection names unknown port",
			mutate: func(d *schema.Document) {
				d.Connections[1][1] = "Out9"
			},
			wantField: "connections[1]",
		},
		{
			name: "connection joins two sinks",
			mutate: func(d *schema.Document) {
				// a1.In1 and top.Out are both sinks inside the circuit.
				d.Connections[0] = schema.Link{"a1", "In1", "top", "Out"}
			},
			wantField: "connections[0]",
		},
		{
			name: "connection crosses domains",
			mutate: func(d *schema.Document) {
				d.Connections[1] = schema.Link{"a1", "Out1", "a1", "Gnd"}
			},
			wantField: "connections[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			tt.mutate(doc)
			c, err := doc.Build(nil)
			if c != nil {
				t.Error("Build returned a partial circuit alongside an error")
			}
			var schemaErr *schema.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Build error = %v, want SchemaError", err)
			}
			if schemaErr.Field != tt.wantField {
				t.Errorf("SchemaError.Field = %q, want %q", schemaErr.Field, tt.wantField)
			}
		})
	}
}

func TestBuildAgainstRegistry(t *testing.T) {
	reg := domain.NewRegistry()
	if _, err := reg.Define("signal", true, false); err != nil {
		t.Fatal(err)
	}

	// Matching flags reuse the registry's domain.
	c, err := sampleDocument().Build(reg)
	if err != nil {
		t.Fatal(err)
	}
	existing, err := reg.Lookup("signal")
	if err != nil {
		t.Fatal(err)
	}
	if c.Ports()[0].Domain() != existing {
		t.Error("boundary port does not share the registry's domain value")
	}

	// Conflicting flags reject the document.
	doc := sampleDocument()
	doc.Domains["signal"] = schema.DomainInfo{Causal: false}
	_, err = doc.Build(reg)
	var schemaErr *schema.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("conflicting domain flags: error = %v, want SchemaError", err)
	}
}

func TestBuildRejectionLeavesRegistryUntouched(t *testing.T) {
	reg := domain.NewRegistry()
	doc := sampleDocument()
	doc.Domains["broken"] = schema.DomainInfo{One2One: true} // acausal one2one

	if _, err := doc.Build(reg); err == nil {
		t.Fatal("Build succeeded with an invalid domain declaration")
	}
	for _, name := range []string{"signal", "electrical", "broken"} {
		if _, err := reg.Lookup(name); err == nil {
			t.Errorf("rejected document defined domain %q", name)
		}
	}
}

func TestFromCircuitReferencedTypesOnly(t *testing.T) {
	mz := testutils.BuildMachZehnder(t)
	if _, err := mz.Circuit.RemoveInstance("phi"); err != nil {
		t.Fatal(err)
	}

	doc := schema.FromCircuit(mz.Circuit)
	if _, ok := doc.ComponentTypes["Phase"]; ok {
		t.Error("document lists a component type with no remaining instance")
	}
	if _, ok := doc.ComponentTypes["Beamsplitter"]; !ok {
		t.Error("document is missing a referenced component type")
	}
	if len(doc.Connections) != 5 {
		t.Errorf("document has %d connections, want 5", len(doc.Connections))
	}
}
