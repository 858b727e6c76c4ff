package graph

import "math"

// Filter keeps edges with weight >= minEdgeWeight whose endpoints both have
// frequency >= minNodeFrequency, then keeps only the nodes those edges
// reference. The result never contains isolated nodes.
func Filter(g Data, minEdgeWeight float64, minNodeFrequency int) Data {
	valid := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Frequency >= minNodeFrequency {
			valid[n.ID] = struct{}{}
		}
	}

	out := Empty()
	used := make(map[string]struct{})
	for _, e := range g.Edges {
		if e.Weight < minEdgeWeight {
			continue
		}
		if _, ok := valid[e.Source]; !ok {
			continue
		}
		if _, ok := valid[e.Target]; !ok {
			continue
		}
		out.Edges = append(out.Edges, e)
		used[e.Source] = struct{}{}
		used[e.Target] = struct{}{}
	}

	for _, n := range g.Nodes {
		if _, ok := used[n.ID]; ok {
			out.Nodes = append(out.Nodes, n)
		}
	}
	return out
}

// FilterDisplay applies Filter with the thresholds of d.
func FilterDisplay(g Data, d DisplayConfig) Data {
	return Filter(g, d.MinEdgeWeight, d.MinNodeFrequency)
}

// Stats summarizes a graph.
type Stats struct {
	NodeCount        int     `json:"node_count"`
	EdgeCount        int     `json:"edge_count"`
	MaxNodeFrequency int     `json:"max_node_frequency"`
	MaxEdgeWeight    float64 `json:"max_edge_weight"`
	AvgEdgeWeight    float64 `json:"avg_edge_weight"` // rounded to 2 decimals
}

// ComputeStats returns summary statistics. Maxima and the average are 0
// for an empty graph.
func ComputeStats(g Data) Stats {
	s := Stats{NodeCount: len(g.Nodes), EdgeCount: len(g.Edges)}

	for _, n := range g.Nodes {
		if n.Frequency > s.MaxNodeFrequency {
			s.MaxNodeFrequency = n.Frequency
		}
	}

	var sum float64
	for _, e := range g.Edges {
		sum += e.Weight
		if e.Weight > s.MaxEdgeWeight {
			s.MaxEdgeWeight = e.Weight
		}
	}
	if len(g.Edges) > 0 {
		s.AvgEdgeWeight = math.Round(sum/float64(len(g.Edges))*100) / 100
	}
	return s
}
