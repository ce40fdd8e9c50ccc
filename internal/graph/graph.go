// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Graph represents a directed graph structure.
//
// Unless otherwise documented, it is unsafe to call any method on Graph concurrently.
type Graph struct {
	// adjacency represents graphs using an adjaency list. Vertices are
	// represented using their hash codes for simpler equaliy checks.
	adjacencyOut map[interface{}]map[interface{}]struct{}
	adjacencyIn  map[interface{}]map[interface{}]struct{}

	// hash maintains the mapping of hash codes to the representative Vertex.
	// It is assumed that two identical hashcodes of v1 and v2 are semantically
	// the same Vertex even if v1 != v2 in Go.
	hash map[interface{}]Vertex
}

// Add adds a vertex to the graph. If a vertex with the same hash code is
// already present, the existing vertex is returned.
func (g *Graph) Add(v Vertex) Vertex {
	g.init()
	h := hashcode(v)
	if existing, ok := g.hash[h]; ok {
		return existing
	}

	g.adjacencyOut[h] = make(map[interface{}]struct{})
	g.adjacencyIn[h] = make(map[interface{}]struct{})
	g.hash[h] = v
	return v
}

// Vertices returns the list of all the vertices in this graph.
func (g *Graph) Vertices() []Vertex {
	result := make([]Vertex, 0, len(g.hash))
	for _, v := range g.hash {
		result = append(result, v)
	}

	return result
}

// AddEdge adds a directed edge to the graph from v1 to v2. Both v1 and v2
// must already be in the Graph via Add or this will do nothing.
func (g *Graph) AddEdge(v1, v2 Vertex) {
	g.init()
	h1, h2 := hashcode(v1), hashcode(v2)

	outMap, ok := g.adjacencyOut[h1]
	if !ok {
		return
	}
	inMap, ok := g.adjacencyIn[h2]
	if !ok {
		return
	}

	outMap[h2] = struct{}{}
	inMap[h1] = struct{}{}
}

// OutEdges returns the vertices that v has an edge to.
func (g *Graph) OutEdges(v Vertex) []Vertex {
	return g.edges(g.adjacencyOut[hashcode(v)])
}

// InEdges returns the vertices that have an edge to v.
func (g *Graph) InEdges(v Vertex) []Vertex {
	return g.edges(g.adjacencyIn[hashcode(v)])
}

func (g *Graph) edges(set map[interface{}]struct{}) []Vertex {
	if len(set) == 0 {
		return nil
	}

	result := make([]Vertex, 0, len(set))
	for h := range set {
		result = append(result, g.hash[h])
	}

	return result
}

// String lists every vertex followed by the vertices it has an edge to,
// indented. Both levels are sorted by VertexName.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, v := range sortByName(g.Vertices()) {
		fmt.Fprintln(&sb, VertexName(v))
		for _, target := range sortByName(g.OutEdges(v)) {
			fmt.Fprintf(&sb, "  %s\n", VertexName(target))
		}
	}

	return sb.String()
}

func sortByName(vs []Vertex) []Vertex {
	sort.Slice(vs, func(i, j int) bool {
		return VertexName(vs[i]) < VertexName(vs[j])
	})

	return vs
}

func (g *Graph) init() {
	if g.adjacencyOut == nil {
		g.adjacencyOut = make(map[interface{}]map[interface{}]struct{})
	}
	if g.adjacencyIn == nil {
		g.adjacencyIn = make(map[interface{}]map[interface{}]struct{})
	}
	if g.hash == nil {
		g.hash = make(map[interface{}]Vertex)
	}
}
