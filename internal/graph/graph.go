// Package graph provides the connection graph over the flight catalog and
// simple-path enumeration through it. The graph captures route topology
// only; later search stages re-query the catalog for actual flight
// instances on a date.
package graph

import (
	"sort"

	"github.com/skypath/itinerary-search/internal/domain"
)

// ConnectionGraph is a directed graph whose nodes are airport codes and
// whose edges are flight routes. Multiple flights on the same
// origin-destination pair collapse into a single edge. The graph is built
// once per dataset snapshot and never mutated by a search.
type ConnectionGraph struct {
	// adjacency maps an airport code to its outgoing neighbors,
	// sorted for deterministic traversal order across searches.
	adjacency map[string][]string
}

// Build constructs a connection graph from the flight catalog. Nodes are
// every airport code in the directory. An edge is added for each flight
// whose origin and destination both exist in the directory; flights
// referencing unknown airports contribute no edges, since connections
// through them can never validate.
func Build(catalog domain.FlightCatalog, directory domain.AirportDirectory) *ConnectionGraph {
	edges := make(map[string]map[string]struct{}, len(directory))
	for code := range directory {
		edges[code] = make(map[string]struct{})
	}

	for _, f := range catalog {
		if f.Origin == f.Destination {
			continue
		}
		if !directory.Contains(f.Origin) || !directory.Contains(f.Destination) {
			continue
		}
		edges[f.Origin][f.Destination] = struct{}{}
	}

	adjacency := make(map[string][]string, len(edges))
	for code, out := range edges {
		neighbors := make([]string, 0, len(out))
		for dest := range out {
			neighbors = append(neighbors, dest)
		}
		sort.Strings(neighbors)
		adjacency[code] = neighbors
	}

	return &ConnectionGraph{adjacency: adjacency}
}

// HasNode reports whether the airport code is a node in the graph.
func (g *ConnectionGraph) HasNode(code string) bool {
	_, ok := g.adjacency[code]
	return ok
}

// HasEdge reports whether at least one flight connects from to to.
func (g *ConnectionGraph) HasEdge(from, to string) bool {
	for _, n := range g.adjacency[from] {
		if n == to {
			return true
		}
	}
	return false
}

// Neighbors returns the airports directly reachable from the given code,
// sorted alphabetically.
func (g *ConnectionGraph) Neighbors(code string) []string {
	return g.adjacency[code]
}

// NodeCount returns the number of nodes in the graph.
func (g *ConnectionGraph) NodeCount() int {
	return len(g.adjacency)
}

// Paths enumerates all simple paths (no repeated airport) from origin to
// destination with at most maxStops intermediate airports, i.e. at most
// maxStops+2 nodes per path. Direct routes (two nodes) are included; the
// caller filters them out when direct itineraries are computed separately.
// Returns an empty slice, not an error, when the destination is
// unreachable.
func (g *ConnectionGraph) Paths(origin, destination string, maxStops int) [][]string {
	if origin == destination {
		return nil
	}
	if !g.HasNode(origin) || !g.HasNode(destination) {
		return nil
	}

	maxNodes := maxStops + 2
	var paths [][]string
	visited := map[string]bool{origin: true}
	current := []string{origin}

	var walk func(code string)
	walk = func(code string) {
		if code == destination {
			path := make([]string, len(current))
			copy(path, current)
			paths = append(paths, path)
			return
		}
		if len(current) >= maxNodes {
			return
		}
		for _, next := range g.adjacency[code] {
			if visited[next] {
				continue
			}
			visited[next] = true
			current = append(current, next)
			walk(next)
			current = current[:len(current)-1]
			visited[next] = false
		}
	}
	walk(origin)

	return paths
}
