package domain

import "fmt"

// Connection is a single validated edge between two ports. Connections are
// always stored in directed form; for acausal domains the orientation is the
// order the endpoints were passed in and carries no meaning. A Connection is
// immutable once created and only ever produced by Circuit.Connect.
type Connection struct {
	source *Port
	target *Port
}

// Source returns the source endpoint.
func (c *Connection) Source() *Port { return c.source }

// Target returns the target endpoint.
func (c *Connection) Target() *Port { return c.target }

// Domain returns the common domain of both endpoints.
func (c *Connection) Domain() *Domain { return c.source.Domain() }

func (c *Connection) String() string {
	return fmt.Sprintf("%s -> %s", c.source, c.target)
}

// touches reports whether p is one of the connection's endpoints.
func (c *Connection) touches(p *Port) bool {
	return c.source == p || c.target == p
}

// joins reports whether the connection links a and b in either orientation.
func (c *Connection) joins(a, b *Port) bool {
	return (c.source == a && c.target == b) || (c.source == b && c.target == a)
}
