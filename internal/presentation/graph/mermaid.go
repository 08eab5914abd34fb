// Package graph renders the administrative hierarchy as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/nepalikit/nepalikit/pkg/geo"
)

// Node is one administrative division in the flowchart. Parent is the ID of
// the containing division, empty for provinces.
type Node struct {
	ID     string
	Label  string
	Kind   geo.Kind
	Parent string
}

// Mermaid produces a Mermaid flowchart (graph TD) from a list of nodes.
// It applies semantic shapes:
// - Province: ((Circle))
// - District: [Rectangle]
// - Municipality: [[Subroutine]]
// If highlightID is non-empty, that node is emphasized.
func Mermaid(nodes []Node, highlightID string) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		opener, closer := "[", "]"
		switch node.Kind {
		case geo.KindProvince:
			opener, closer = "((", "))"
		case geo.KindMunicipality:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", node.ID, opener, escapeLabel(node.Label), closer))

		if node.Parent != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", node.Parent, node.ID))
		}
	}

	sb.WriteString("\n    %% Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef province fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef district fill:#f1f8e9,stroke:#33691e,stroke-width:1px,color:#000;\n")
	sb.WriteString("    classDef municipality fill:#fff3e0,stroke:#e65100,stroke-width:1px,color:#000;\n")
	sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	for _, node := range nodes {
		class := string(node.Kind)
		if node.ID == highlightID {
			class = "highlight"
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", node.ID, class))
	}

	return sb.String()
}

// CountryNodes returns every province, district and listed local unit.
func CountryNodes() []Node {
	var nodes []Node
	for _, p := range geo.Provinces() {
		nodes = append(nodes, provinceNode(p))
		districts, err := geo.DistrictsByProvince(p.ID)
		if err != nil {
			continue
		}
		for _, d := range districts {
			nodes = append(nodes, districtNode(d))
			nodes = append(nodes, municipalityNodes(d)...)
		}
	}
	return nodes
}

// SubtreeNodes returns the nodes around a search match: the subtree below a
// province or district, or the full lineage of a municipality. The second
// return value is the ID of the matched node, for highlighting.
func SubtreeNodes(m geo.Match) ([]Node, string, error) {
	switch m.Kind {
	case geo.KindProvince:
		p, err := geo.ProvinceByID(m.ID)
		if err != nil {
			return nil, "", err
		}
		nodes := []Node{provinceNode(p)}
		districts, err := geo.DistrictsByProvince(p.ID)
		if err != nil {
			return nil, "", err
		}
		for _, d := range districts {
			nodes = append(nodes, districtNode(d))
			nodes = append(nodes, municipalityNodes(d)...)
		}
		return nodes, nodes[0].ID, nil
	case geo.KindDistrict:
		d, err := geo.DistrictByID(m.ID)
		if err != nil {
			return nil, "", err
		}
		p, err := geo.ProvinceByID(d.ProvinceID)
		if err != nil {
			return nil, "", err
		}
		nodes := []Node{provinceNode(p), districtNode(d)}
		nodes = append(nodes, municipalityNodes(d)...)
		return nodes, nodes[1].ID, nil
	case geo.KindMunicipality:
		h, err := geo.HierarchyOf(m.ID)
		if err != nil {
			return nil, "", err
		}
		nodes := []Node{
			provinceNode(h.Province),
			districtNode(h.District),
			{
				ID:     nodeID(geo.KindMunicipality, h.Municipality.ID),
				Label:  municipalityLabel(h.Municipality),
				Kind:   geo.KindMunicipality,
				Parent: nodeID(geo.KindDistrict, h.District.ID),
			},
		}
		return nodes, nodes[2].ID, nil
	default:
		return nil, "", fmt.Errorf("unknown kind %q", m.Kind)
	}
}

func provinceNode(p geo.Province) Node {
	return Node{ID: nodeID(geo.KindProvince, p.ID), Label: p.NameEN, Kind: geo.KindProvince}
}

func districtNode(d geo.District) Node {
	return Node{
		ID:     nodeID(geo.KindDistrict, d.ID),
		Label:  d.NameEN,
		Kind:   geo.KindDistrict,
		Parent: nodeID(geo.KindProvince, d.ProvinceID),
	}
}

func municipalityNodes(d geo.District) []Node {
	munis, err := geo.MunicipalitiesByDistrict(d.ID)
	if err != nil {
		return nil
	}
	var nodes []Node
	for _, m := range munis {
		nodes = append(nodes, Node{
			ID:     nodeID(geo.KindMunicipality, m.ID),
			Label:  municipalityLabel(m),
			Kind:   geo.KindMunicipality,
			Parent: nodeID(geo.KindDistrict, d.ID),
		})
	}
	return nodes
}

// municipalityLabel annotates the name with the ward count on a second line.
func municipalityLabel(m geo.Municipality) string {
	return fmt.Sprintf("%s <br/> %d wards", m.NameEN, m.WardCount)
}

// nodeID builds a Mermaid-safe ID like p1, d76 or m732.
func nodeID(kind geo.Kind, id int) string {
	return fmt.Sprintf("%c%d", kind[0], id)
}

// escapeLabel rewrites double quotes so labels stay valid Mermaid strings.
func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
