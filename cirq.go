package cirq

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ntezak/cirq/internal/logging"
	"github.com/ntezak/cirq/internal/presentation/graph"
	"github.com/ntezak/cirq/pkg/domain"
	"github.com/ntezak/cirq/pkg/schema"
)

// Version is the library version reported by the CLI.
const Version = "0.4.0"

// ErrDuplicateComponentType is returned when a component type name is defined twice.
var ErrDuplicateComponentType = errors.New("component type already defined")

// ErrUnknownComponentType is returned when a component type name cannot be found.
var ErrUnknownComponentType = errors.New("unknown component type")

// Workbench is the high-level entry point for the cirq library. It bundles a
// domain registry with a catalog of component types and provides file-level
// load/save of portable circuit documents. The circuit model itself lives in
// pkg/domain; the Workbench only wraps construction and persistence.
type Workbench struct {
	registry  *domain.Registry
	types     map[string]*domain.ComponentType
	typeOrder []string
	logger    *slog.Logger
}

// Option configures a Workbench.
type Option func(*Workbench)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workbench) {
		w.logger = logger
	}
}

// WithRegistry shares a pre-populated domain registry.
func WithRegistry(reg *domain.Registry) Option {
	return func(w *Workbench) {
		w.registry = reg
	}
}

// New creates a Workbench with an empty registry and catalog.
func New(opts ...Option) *Workbench {
	w := &Workbench{types: make(map[string]*domain.ComponentType)}
	for _, opt := range opts {
		opt(w)
	}
	if w.registry == nil {
		w.registry = domain.NewRegistry()
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}
	return w
}

// Registry returns the workbench's domain registry.
func (w *Workbench) Registry() *domain.Registry { return w.registry }

// DefineDomain registers a connection domain.
func (w *Workbench) DefineDomain(name string, causal, one2one bool) (*domain.Domain, error) {
	d, err := w.registry.Define(name, causal, one2one)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("domain defined", "domain", name, "causal", causal, "one2one", one2one)
	return d, nil
}

// Domain resolves a previously defined domain.
func (w *Workbench) Domain(name string) (*domain.Domain, error) {
	return w.registry.Lookup(name)
}

// DefineComponent registers a component type, taking ownership of the ports.
func (w *Workbench) DefineComponent(name string, ports ...*domain.Port) (*domain.ComponentType, error) {
	if _, dup := w.types[name]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateComponentType, name)
	}
	t, err := domain.NewComponentType(name, ports)
	if err != nil {
		return nil, err
	}
	w.types[name] = t
	w.typeOrder = append(w.typeOrder, name)
	w.logger.Debug("component type defined", "type", name, "ports", len(ports))
	return t, nil
}

// ComponentType resolves a component type from the catalog.
func (w *Workbench) ComponentType(name string) (*domain.ComponentType, error) {
	t, ok := w.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponentType, name)
	}
	return t, nil
}

// ComponentTypes returns the catalog in definition order.
func (w *Workbench) ComponentTypes() []*domain.ComponentType {
	out := make([]*domain.ComponentType, 0, len(w.typeOrder))
	for _, name := range w.typeOrder {
		out = append(out, w.types[name])
	}
	return out
}

// NewCircuit creates an empty circuit.
func (w *Workbench) NewCircuit(name string) *domain.Circuit {
	return domain.NewCircuit(name)
}

// Mermaid renders a circuit as Mermaid flowchart text.
func (w *Workbench) Mermaid(c *domain.Circuit) string {
	return graph.GenerateMermaid(c)
}

// Load reads and rebuilds a circuit document from r. Format is chosen by
// name's extension: ".yaml"/".yml" selects YAML, anything else JSON.
// Domains in the document are merged into the workbench registry.
func (w *Workbench) Load(r io.Reader, name string) (*domain.Circuit, error) {
	var (
		doc *schema.Document
		err error
	)
	if yamlExt(name) {
		doc, err = schema.DecodeYAML(r)
	} else {
		doc, err = schema.DecodeJSON(r)
	}
	if err != nil {
		return nil, err
	}
	c, err := doc.Build(w.registry)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("circuit loaded", "circuit", c.Name(),
		"instances", len(c.Instances()), "connections", len(c.Connections()))
	return c, nil
}

// LoadFile reads a circuit document from disk. Persistence stays this thin
// on purpose: the core model knows nothing about files.
func (w *Workbench) LoadFile(path string) (*domain.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return w.Load(f, filepath.Base(path))
}

// Save writes the portable document for c to wr, format chosen as in Load.
func (w *Workbench) Save(wr io.Writer, name string, c *domain.Circuit) error {
	doc := schema.FromCircuit(c)
	if yamlExt(name) {
		return schema.EncodeYAML(wr, doc)
	}
	return schema.EncodeJSON(wr, doc)
}

// SaveFile writes a circuit document to disk.
func (w *Workbench) SaveFile(path string, c *domain.Circuit) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Save(f, filepath.Base(path), c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func yamlExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
