// Package graph renders circuits as Mermaid flowchart text, a lightweight
// diagram export for docs and terminals.
package graph

import (
	"fmt"
	"strings"

	"github.com/ntezak/cirq/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph LR) for a circuit.
// Boundary ports render as circles, component instances as subgraphs holding
// their ports. Causal connections use directed arrows, acausal ones plain
// links, both labeled with the domain name.
func GenerateMermaid(c *domain.Circuit) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, p := range c.Ports() {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", portID(p), p.Name()))
	}

	for _, inst := range c.Instances() {
		sb.WriteString(fmt.Sprintf("    subgraph %s[\"%s: %s\"]\n",
			sanitizeID(inst.Name()), inst.Name(), inst.Type().Name()))
		for _, p := range inst.Ports() {
			sb.WriteString(fmt.Sprintf("        %s[\"%s\"]\n", portID(p), p.Name()))
		}
		sb.WriteString("    end\n")
	}

	for _, cn := range c.Connections() {
		arrow := "---"
		if cn.Domain().Causal {
			arrow = "-->"
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" %s %s\n",
			portID(cn.Source()), cn.Domain().Name, arrow, portID(cn.Target())))
	}

	return sb.String()
}

// portID builds a diagram-unique node ID from the owner and port names.
func portID(p *domain.Port) string {
	return sanitizeID(p.OwnerName() + "." + p.Name())
}

func sanitizeID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", " ", "_")
	return r.Replace(id)
}
