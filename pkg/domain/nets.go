package domain

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type netCacheEntry struct {
	version uint64
	nets    [][]*Port
}

// Nets partitions all ports of the given domain — boundary ports first, then
// instance ports in attachment order — into connectivity classes, treating
// connections as undirected edges. Classes with fewer than two members are
// omitted. Classes are ordered by their earliest port in scan order, and so
// are the ports within each class, which makes the result reproducible for
// a given construction sequence.
//
// Results are cached per domain and reused until the next topology change.
func (c *Circuit) Nets(d *Domain) [][]*Port {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.netCache[d.Name]; ok && entry.version == c.topoVersion {
		return cloneNets(entry.nets)
	}

	// Scan order defines both node IDs and the deterministic output order.
	var ports []*Port
	ports = append(ports, filterByDomain(c.ports, d)...)
	for _, inst := range c.instances {
		ports = append(ports, filterByDomain(inst.ports, d)...)
	}

	index := make(map[*Port]int64, len(ports))
	g := simple.NewUndirectedGraph()
	for i, p := range ports {
		index[p] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}

	for _, cn := range c.connections {
		si, ok := index[cn.source]
		if !ok {
			continue
		}
		ti, ok := index[cn.target]
		if !ok {
			continue
		}
		if si != ti {
			g.SetEdge(simple.Edge{F: simple.Node(si), T: simple.Node(ti)})
		}
	}

	var nets [][]*Port
	for _, component := range topo.ConnectedComponents(g) {
		if len(component) < 2 {
			continue
		}
		net := make([]*Port, 0, len(component))
		for _, node := range component {
			net = append(net, ports[node.ID()])
		}
		sort.Slice(net, func(i, j int) bool { return index[net[i]] < index[net[j]] })
		nets = append(nets, net)
	}
	sort.Slice(nets, func(i, j int) bool { return index[nets[i][0]] < index[nets[j][0]] })

	c.netCache[d.Name] = netCacheEntry{version: c.topoVersion, nets: nets}
	return cloneNets(nets)
}

// cloneNets copies the outer and inner slices so cached results stay
// untouched by callers.
func cloneNets(nets [][]*Port) [][]*Port {
	out := make([][]*Port, len(nets))
	for i, net := range nets {
		out[i] = append([]*Port(nil), net...)
	}
	return out
}
