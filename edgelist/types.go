package edgelist

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcycle/core"
)

// Sentinel errors for document decoding.
var (
	// ErrNoGraphs is returned for a document without any graph entry.
	ErrNoGraphs = errors.New("edgelist: document has no graphs")

	// ErrMalformedEdge is returned for an edge that is neither [s, t] nor {source, target}.
	ErrMalformedEdge = errors.New("edgelist: malformed edge")
)

// Document is the top-level edge-list file.
type Document struct {
	Graphs []GraphSpec `yaml:"graphs" json:"graphs"`
}

// GraphSpec is one named graph of a Document.
type GraphSpec struct {
	Name   string         `yaml:"name" json:"name"`
	Source *core.VertexID `yaml:"source,omitempty" json:"source,omitempty"`
	Edges  []EdgeSpec     `yaml:"edges" json:"edges"`
}

// EdgeSpec is a core.Edge with the document encodings described in the package doc.
type EdgeSpec core.Edge

// ToEdges returns the graph's edges in document order.
func (gs GraphSpec) ToEdges() []core.Edge {
	edges := make([]core.Edge, len(gs.Edges))
	for i, e := range gs.Edges {
		edges[i] = core.Edge(e)
	}

	return edges
}

// FromEdges builds a GraphSpec from an edge list.
func FromEdges(name string, edges []core.Edge) GraphSpec {
	gs := GraphSpec{Name: name, Edges: make([]EdgeSpec, len(edges))}
	for i, e := range edges {
		gs.Edges[i] = EdgeSpec(e)
	}

	return gs
}

// UnmarshalYAML accepts [s, t] or {source: s, target: t}.
func (e *EdgeSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: want 2 endpoints, got %d: %w", value.Line, len(value.Content), ErrMalformedEdge)
		}
		var pair [2]core.VertexID
		for i, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: endpoint %d is not a scalar: %w", n.Line, i, ErrMalformedEdge)
			}
			if err := n.Decode(&pair[i]); err != nil {
				return fmt.Errorf("line %d: endpoint %q: %w", n.Line, n.Value, ErrMalformedEdge)
			}
		}
		*e = EdgeSpec{Source: pair[0], Target: pair[1]}

		return nil

	case yaml.MappingNode:
		var m struct {
			Source *core.VertexID `yaml:"source"`
			Target *core.VertexID `yaml:"target"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("line %d: %v: %w", value.Line, err, ErrMalformedEdge)
		}
		if m.Source == nil || m.Target == nil {
			return fmt.Errorf("line %d: both source and target are required: %w", value.Line, ErrMalformedEdge)
		}
		*e = EdgeSpec{Source: *m.Source, Target: *m.Target}

		return nil

	default:
		return fmt.Errorf("line %d: unexpected %q: %w", value.Line, value.Value, ErrMalformedEdge)
	}
}

// MarshalYAML writes the compact flow form [s, t].
func (e EdgeSpec) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(int(e.Source))},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(int(e.Target))},
		},
	}, nil
}
