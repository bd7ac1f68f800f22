/*
Package schema implements the portable wire format for circuits.

A circuit serializes to a Document: a name-keyed, identity-free structure
listing domains, the component types actually referenced, instances,
boundary ports and connections. Connections travel as 4-element tuples
[source_owner, source_port, target_owner, target_port]. The same shape is
available as JSON (the interoperability contract) and as a YAML convenience
re-encoding.

Decoding is strict on shape and semantics: malformed fields surface as
SchemaError, and Document.Build re-validates every connection through the
same rules as Circuit.Connect, so an invalid graph is rejected rather than
silently accepted. The round-trip law holds: building the document produced
by FromCircuit yields a structurally equivalent circuit.
*/
package schema
