// Package export writes the pipeline's persisted artifacts: a GEXF graph
// interchange document, delimited tabular series, and a binary dump of the
// shared-content matrix.
package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
)

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	DefaultEdgeType string     `xml:"defaultedgetype,attr"`
	Attributes      gexfAttrs  `xml:"attributes"`
	Nodes           []gexfNode `xml:"nodes>node"`
	Edges           []gexfEdge `xml:"edges>edge"`
}

type gexfAttrs struct {
	Class string     `xml:"class,attr"`
	Attrs []gexfAttr `xml:"attribute"`
}

type gexfAttr struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID        string          `xml:"id,attr"`
	Label     string          `xml:"label,attr"`
	AttValues []gexfAttrValue `xml:"attvalues>attvalue"`
}

type gexfAttrValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	ID     int     `xml:"id,attr"`
	Source string  `xml:"source,attr"`
	Target string  `xml:"target,attr"`
	Weight float64 `xml:"weight,attr"`
}

// WriteGEXF serializes the interaction graph as a GEXF 1.2 document with a
// "kind" node attribute distinguishing influencers from regular users.
// Nodes and edges are emitted in sorted order, so output is reproducible.
func WriteGEXF(w io.Writer, g *network.InteractionGraph) error {
	doc := gexfDoc{
		XMLNS:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			DefaultEdgeType: "directed",
			Attributes: gexfAttrs{
				Class: "node",
				Attrs: []gexfAttr{{ID: "0", Title: "kind", Type: "string"}},
			},
		},
	}

	for _, user := range g.SortedUsers() {
		kind, _ := g.KindOf(user)
		doc.Graph.Nodes = append(doc.Graph.Nodes, gexfNode{
			ID:    user,
			Label: user,
			AttValues: []gexfAttrValue{
				{For: "0", Value: kind.String()},
			},
		})
	}
	for i, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     i,
			Source: e.From,
			Target: e.To,
			Weight: float64(e.Weight),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: write gexf header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode gexf: %w", err)
	}
	return nil
}
