// Package testutils provides shared fixtures for cirq tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntezak/cirq/pkg/domain"
)

// MachZehnder bundles the canonical two-beamsplitter interferometer fixture:
// a causal one-to-one "fieldmode" domain, an acausal "electrical" domain,
// two Beamsplitter instances and one Phase instance, fully wired with eight
// connections (seven fieldmode, one electrical).
type MachZehnder struct {
	Registry   *domain.Registry
	FieldMode  *domain.Domain
	Electrical *domain.Domain

	Beamsplitter *domain.ComponentType
	Phase        *domain.ComponentType

	Circuit *domain.Circuit
	B1, B2  *domain.ComponentInstance
	Phi     *domain.ComponentInstance
}

// BuildMachZehnder assembles the fixture, failing the test on any error.
func BuildMachZehnder(t *testing.T) *MachZehnder {
	t.Helper()

	reg := domain.NewRegistry()
	fieldmode, err := reg.Define("fieldmode", true, true)
	require.NoError(t, err)
	electrical, err := reg.Define("electrical", false, false)
	require.NoError(t, err)

	bsIn, err := domain.Inputs(fieldmode, "In1", "In2")
	require.NoError(t, err)
	bsOut, err := domain.Outputs(fieldmode, "Out1", "Out2")
	require.NoError(t, err)
	beamsplitter, err := domain.NewComponentType("Beamsplitter", append(bsIn, bsOut...))
	require.NoError(t, err)

	phIn, err := domain.Inputs(fieldmode, "In1")
	require.NoError(t, err)
	phCtl, err := domain.Inouts(electrical, "Control")
	require.NoError(t, err)
	phOut, err := domain.Outputs(fieldmode, "Out1")
	require.NoError(t, err)
	phase, err := domain.NewComponentType("Phase", append(append(phIn, phCtl...), phOut...))
	require.NoError(t, err)

	c := domain.NewCircuit("mach_zehnder")
	for _, spec := range []struct {
		name string
		dom  *domain.Domain
		dir  domain.Direction
	}{
		{"In1", fieldmode, domain.DirectionIn},
		{"In2", fieldmode, domain.DirectionIn},
		{"Out1", fieldmode, domain.DirectionOut},
		{"Out2", fieldmode, domain.DirectionOut},
		{"Control", electrical, domain.DirectionInOut},
	} {
		p, err := domain.NewPort(spec.name, spec.dom, spec.dir)
		require.NoError(t, err)
		require.NoError(t, c.AddPort(p))
	}

	b1 := beamsplitter.MakeInstance("b1")
	b2 := beamsplitter.MakeInstance("b2")
	phi := phase.MakeInstance("phi")
	for _, inst := range []*domain.ComponentInstance{b1, b2, phi} {
		require.NoError(t, c.AddInstance(inst))
	}

	mz := &MachZehnder{
		Registry:     reg,
		FieldMode:    fieldmode,
		Electrical:   electrical,
		Beamsplitter: beamsplitter,
		Phase:        phase,
		Circuit:      c,
		B1:           b1,
		B2:           b2,
		Phi:          phi,
	}

	for _, w := range [][2]*domain.Port{
		{mz.BoundaryPort(t, "In1"), mz.InstancePort(t, b1, "In1")},
		{mz.BoundaryPort(t, "In2"), mz.InstancePort(t, b1, "In2")},
		{mz.InstancePort(t, b1, "Out1"), mz.InstancePort(t, phi, "In1")},
		{mz.InstancePort(t, b1, "Out2"), mz.InstancePort(t, b2, "In1")},
		{mz.InstancePort(t, phi, "Out1"), mz.InstancePort(t, b2, "In2")},
		{mz.InstancePort(t, b2, "Out1"), mz.BoundaryPort(t, "Out1")},
		{mz.InstancePort(t, b2, "Out2"), mz.BoundaryPort(t, "Out2")},
		{mz.BoundaryPort(t, "Control"), mz.InstancePort(t, phi, "Control")},
	} {
		_, err := c.Connect(w[0], w[1])
		require.NoError(t, err)
	}

	return mz
}

// BoundaryPort resolves a boundary port of the fixture circuit.
func (mz *MachZehnder) BoundaryPort(t *testing.T, name string) *domain.Port {
	t.Helper()
	p, err := mz.Circuit.Port(name)
	require.NoError(t, err)
	return p
}

// InstancePort resolves a port on one of the fixture instances.
func (mz *MachZehnder) InstancePort(t *testing.T, inst *domain.ComponentInstance, name string) *domain.Port {
	t.Helper()
	p, err := inst.Port(name)
	require.NoError(t, err)
	return p
}
