// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-ioc/internal/graph"
)

// typeVertex is a constructable type. It is keyed by the full type so that
// a pointer and its element type are different vertices.
type typeVertex struct {
	Ref TypeRef
}

func (v *typeVertex) Hashcode() interface{} { return "type: " + v.Ref.String() }
func (v *typeVertex) String() string        { return v.Hashcode().(string) }

// paramVertex is a single constructor parameter of a type. It has an in
// edge from its type and an out edge to the service it requires.
type paramVertex struct {
	Target TypeRef
	Param  *param
}

func (v *paramVertex) Hashcode() interface{} {
	return fmt.Sprintf("param: %s/%s", v.Target, v.Param.Name)
}

func (v *paramVertex) String() string { return v.Hashcode().(string) }

// serviceVertex is a service name. If it is bound, it has an out edge to
// its resolver.
type serviceVertex struct {
	Name string
}

func (v *serviceVertex) Hashcode() interface{} { return "service: " + v.Name }
func (v *serviceVertex) String() string        { return v.Hashcode().(string) }

// factoryVertex is the resolver of a service bound to a Factory. There is
// one per service since factories are not comparable.
type factoryVertex struct {
	Service string
}

func (v *factoryVertex) Hashcode() interface{} { return "factory: " + v.Service }
func (v *factoryVertex) String() string        { return v.Hashcode().(string) }

var (
	_ graph.VertexHashable = (*typeVertex)(nil)
	_ graph.VertexHashable = (*paramVertex)(nil)
	_ graph.VertexHashable = (*serviceVertex)(nil)
	_ graph.VertexHashable = (*factoryVertex)(nil)
)

// dependencyGraph builds the dependency graph for every type Make can
// construct: the catalog and every bound type. Types whose tags cannot be
// parsed are reported as errors and have no param vertices.
func (c *Container) dependencyGraph() (*graph.Graph, []error) {
	var g graph.Graph
	var errs []error

	// Services first, so that every bound service points at its resolver.
	var targets []*typeVertex
	for name, b := range c.bindings {
		vs := g.Add(&serviceVertex{Name: name})
		switch r := b.resolver.(type) {
		case TypeRef:
			vt := g.Add(&typeVertex{Ref: r}).(*typeVertex)
			g.AddEdge(vs, vt)
			targets = append(targets, vt)
		case Factory:
			g.AddEdge(vs, g.Add(&factoryVertex{Service: name}))
		}
	}
	for _, ref := range c.types {
		targets = append(targets, g.Add(&typeVertex{Ref: ref}).(*typeVertex))
	}

	seen := make(map[*typeVertex]struct{}, len(targets))
	for _, vt := range targets {
		if _, ok := seen[vt]; ok {
			continue
		}
		seen[vt] = struct{}{}

		params, err := parseParams(vt.Ref.typ, c.tagName)
		if err != nil {
			errs = append(errs, &ErrConstruction{Type: vt.Ref.Name(), Err: err})
			continue
		}

		for _, p := range params {
			vp := g.Add(&paramVertex{Target: vt.Ref, Param: p})
			g.AddEdge(vt, vp)
			g.AddEdge(vp, g.Add(&serviceVertex{Name: p.Service}))
		}
	}

	return &g, errs
}

// assignable reports whether the value produced by resolver vertex v can be
// set on p. Factories can't be checked until they are called.
func assignable(v graph.Vertex, p *param) (reflect.Type, bool) {
	tv, ok := v.(*typeVertex)
	if !ok {
		return nil, true
	}

	t := tv.Ref.typ
	return t, t.AssignableTo(p.Type)
}
