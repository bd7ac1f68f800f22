/*
Package cirq models typed circuits: networks of components connected through
directional or non-directional ports, independent of any physical
interpretation — electrical, optical, or purely abstract.

The core lives in pkg/domain (Domain, Port, ComponentType,
ComponentInstance, Circuit, Connection) and enforces the structural rules of
the model: ports connect only within one domain, causal domains connect
sources to sinks with the boundary-inversion rule, one-to-one domains limit
every port to a single connection, and a port always has exactly one owner.
pkg/schema provides the lossless JSON wire format (plus a YAML twin), and
Circuit.Nets computes connectivity classes per domain.

The Workbench in this package is a convenience facade for assembling and
persisting circuits:

	wb := cirq.New()

	fieldmode, _ := wb.DefineDomain("fieldmode", true, true)

	ins, _ := domain.Inputs(fieldmode, "In1", "In2")
	outs, _ := domain.Outputs(fieldmode, "Out1", "Out2")
	bs, _ := wb.DefineComponent("Beamsplitter", append(ins, outs...)...)

	c := wb.NewCircuit("interferometer")
	_ = c.AddInstance(bs.MakeInstance("b1"))

	in1, _ := domain.NewPort("In1", fieldmode, domain.DirectionIn)
	_ = c.AddPort(in1)
	b1, _ := c.Instance("b1")
	b1In1, _ := b1.Port("In1")
	if _, err := c.Connect(in1, b1In1); err != nil {
		// rejected: typed validation error
	}

	_ = wb.SaveFile("interferometer.json", c)

Everything mutating the model validates first and commits only on success,
so a failed call never leaves a circuit half-changed.
*/
package cirq
