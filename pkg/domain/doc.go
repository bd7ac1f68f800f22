/*
Package domain contains the core circuit data model.

It defines the fundamental entities — Domain, Port, ComponentType,
ComponentInstance, Circuit and Connection — together with the structural
rules the model enforces: per-domain directionality, fan-out limits for
one-to-one domains, and exclusive port ownership. This package is kept pure
and free of I/O; serialization lives in pkg/schema and presentation concerns
in their own packages.

# Ownership discipline

A Port belongs to exactly one owner at a time. Ports are never shared by
reference between owners: ComponentType.MakeInstance clones every template
port for the new instance, and Circuit.AddPort refuses ports that already
have an owner. Clone is the only way to reuse a port elsewhere.

# Boundary inversion

A circuit's own boundary ports swap their directional role relative to the
interior: a boundary "in" port injects signal into the circuit and therefore
acts as a source, a boundary "out" port as a sink. Circuit.EffectiveRole is
the single place this rule lives; the connection validator consumes it
uniformly.

# Nets

Circuit.Nets computes connectivity classes of same-domain ports over the
connection graph, ignoring direction. Results are deterministic for a given
construction sequence and cached until the topology changes.
*/
package domain
