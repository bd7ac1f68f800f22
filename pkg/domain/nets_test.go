package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntezak/cirq/internal/testutils"
	"github.com/ntezak/cirq/pkg/domain"
)

func netStrings(nets [][]*domain.Port) [][]string {
	out := make([][]string, len(nets))
	for i, net := range nets {
		for _, p := range net {
			out[i] = append(out[i], p.String())
		}
	}
	return out
}

func TestMachZehnderNets(t *testing.T) {
	mz := testutils.BuildMachZehnder(t)

	fieldNets := mz.Circuit.Nets(mz.FieldMode)
	want := [][]string{
		{"mach_zehnder.In1", "b1.In1"},
		{"mach_zehnder.In2", "b1.In2"},
		{"mach_zehnder.Out1", "b2.Out1"},
		{"mach_zehnder.Out2", "b2.Out2"},
		{"b1.Out1", "phi.In1"},
		{"b1.Out2", "b2.In1"},
		{"b2.In2", "phi.Out1"},
	}
	assert.Equal(t, want, netStrings(fieldNets),
		"fieldmode must partition into seven two-element nets")

	elecNets := mz.Circuit.Nets(mz.Electrical)
	assert.Equal(t, [][]string{{"mach_zehnder.Control", "phi.Control"}}, netStrings(elecNets))
}

func TestNetsMergeChains(t *testing.T) {
	// In a plain acausal domain a shared port merges edges into one net.
	reg := domain.NewRegistry()
	elec, err := reg.Define("electrical", false, false)
	require.NoError(t, err)

	pads, err := domain.Inouts(elec, "A", "B")
	require.NoError(t, err)
	junction, err := domain.NewComponentType("Junction", pads)
	require.NoError(t, err)

	c := domain.NewCircuit("bus")
	j1 := junction.MakeInstance("j1")
	j2 := junction.MakeInstance("j2")
	j3 := junction.MakeInstance("j3")
	for _, inst := range []*domain.ComponentInstance{j1, j2, j3} {
		require.NoError(t, c.AddInstance(inst))
	}
	port := func(inst *domain.ComponentInstance, name string) *domain.Port {
		p, err := inst.Port(name)
		require.NoError(t, err)
		return p
	}

	_, err = c.Connect(port(j1, "B"), port(j2, "A"))
	require.NoError(t, err)
	_, err = c.Connect(port(j2, "A"), port(j3, "A"))
	require.NoError(t, err)

	nets := c.Nets(elec)
	require.Len(t, nets, 1, "chained connections must collapse into one net")
	assert.Equal(t, [][]string{{"j1.B", "j2.A", "j3.A"}}, netStrings(nets))
}

func TestNetsSkipIsolatedPorts(t *testing.T) {
	mz := testutils.BuildMachZehnder(t)

	// Disconnect phi entirely within fieldmode: its ports must vanish from
	// the result rather than appear as singleton nets.
	_, err := mz.Circuit.RemoveInstance("phi")
	require.NoError(t, err)

	for _, net := range mz.Circuit.Nets(mz.FieldMode) {
		require.GreaterOrEqual(t, len(net), 2)
		for _, p := range net {
			assert.NotEqual(t, "phi", p.OwnerName())
		}
	}
	assert.Empty(t, mz.Circuit.Nets(mz.Electrical),
		"the only electrical connection went away with phi")
}

func TestNetsCaching(t *testing.T) {
	mz := testutils.BuildMachZehnder(t)

	first := mz.Circuit.Nets(mz.FieldMode)
	version := mz.Circuit.TopologyVersion()
	second := mz.Circuit.Nets(mz.FieldMode)
	assert.Equal(t, version, mz.Circuit.TopologyVersion(), "Nets must not mutate topology")
	assert.Equal(t, netStrings(first), netStrings(second))

	// Callers may reorder their copy without poisoning the cache.
	first[0], first[1] = first[1], first[0]
	third := mz.Circuit.Nets(mz.FieldMode)
	assert.Equal(t, netStrings(second), netStrings(third))

	// A topology change invalidates the cached partition.
	removed, err := mz.Circuit.RemoveInstance("b2")
	require.NoError(t, err)
	require.NotEmpty(t, removed)
	after := mz.Circuit.Nets(mz.FieldMode)
	assert.NotEqual(t, netStrings(second), netStrings(after))
	for _, net := range after {
		for _, p := range net {
			assert.NotEqual(t, "b2", p.OwnerName())
		}
	}
}

func TestNetsDeterministic(t *testing.T) {
	// Two independent builds of the same circuit yield the same partition in
	// the same order.
	a := netStrings(func() [][]*domain.Port {
		mz := testutils.BuildMachZehnder(t)
		return mz.Circuit.Nets(mz.FieldMode)
	}())
	b := netStrings(func() [][]*domain.Port {
		mz := testutils.BuildMachZehnder(t)
		return mz.Circuit.Nets(mz.FieldMode)
	}())
	assert.Equal(t, a, b)
}
