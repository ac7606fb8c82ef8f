package network

import "slices"

// Components returns the connected components of the topology, treating every
// resistor as undirected. Each component is sorted ascending; components are
// ordered by their smallest node id.
//
// Time:   O(N + E).
// Memory: O(N + E) for the symmetric adjacency and visited flags.
func (t Topology) Components() [][]int {
	adj := make(map[int][]int, len(t))
	for _, e := range t.Edges() {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	seen := make(map[int]bool, len(t))
	var comps [][]int
	for _, start := range t.NodeIDs() {
		if seen[start] {
			continue
		}
		// BFS to collect the component.
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range adj[queue[qi]] {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b lie in the same component.
func (t Topology) Connected(a, b int) bool {
	for _, comp := range t.Components() {
		_, hasA := slices.BinarySearch(comp, a)
		_, hasB := slices.BinarySearch(comp, b)
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
