package graph

import "fmt"

// ExportNode and ExportEdge are a storage-agnostic projection of a
// CodeGraph, the same normalized-properties shape the teacher used for its
// IRGraph (analyzer/graph_exporter.go) when handing a lineage graph to an
// external store — adapted here to CodeNode/CodeEdge so a caller can sink a
// RankedCodeGraph into something other than the Markdown renderer (a graph
// database, a JSON dump) without the engine knowing about that backend.
type ExportNode struct {
	ID         string
	Type       string
	Properties map[string]interface{}
}

type ExportEdge struct {
	Source     string
	Target     string
	Type       string
	Properties map[string]interface{}
}

// ExportGraph holds the nodes and edges of a projected CodeGraph.
type ExportGraph struct {
	Nodes []ExportNode
	Edges []ExportEdge
}

// Exporter sends a projected graph to an external backend.
type Exporter interface {
	Export(graph *ExportGraph) error
}

// BuildExportGraph projects a RankedCodeGraph into the backend-agnostic
// shape, carrying the node's rank (when present) as a property.
func BuildExportGraph(rg *RankedCodeGraph) *ExportGraph {
	out := &ExportGraph{}
	for id, node := range rg.Nodes {
		props := map[string]interface{}{
			"name":      node.Name,
			"filePath":  node.FilePath,
			"startLine": node.StartLine,
			"endLine":   node.EndLine,
		}
		if node.Language != "" {
			props["language"] = node.Language
		}
		if rank, ok := rg.Ranks[id]; ok {
			props["rank"] = rank
		}
		out.Nodes = append(out.Nodes, ExportNode{
			ID:         id,
			Type:       string(node.Type),
			Properties: props,
		})
	}
	for _, edge := range rg.Edges {
		out.Edges = append(out.Edges, ExportEdge{
			Source: edge.FromID,
			Target: edge.ToID,
			Type:   string(edge.Type),
		})
	}
	return out
}

// NopExporter discards the graph; used when no sink is configured.
type NopExporter struct{}

func (NopExporter) Export(*ExportGraph) error { return nil }

// MultiExporter fans a single export out to several sinks, stopping at the
// first error and naming which sink failed.
type MultiExporter []Exporter

func (m MultiExporter) Export(g *ExportGraph) error {
	for i, e := range m {
		if err := e.Export(g); err != nil {
			return fmt.Errorf("exporter %d: %w", i, err)
		}
	}
	return nil
}
