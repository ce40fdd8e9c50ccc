// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-ioc/internal/graph"
	"github.com/hashicorp/go-multierror"
)

// Validate checks every bound and declared type without constructing
// anything. It reports every constructor parameter that requires an unbound
// service, every parameter whose bound type is not assignable to it, and
// every type whose tags cannot be parsed. With the default KeyParameter
// policy it also reports parameter names that consume more than one
// singleton service, since those services would share one instance. All
// problems are returned together.
//
// A nil error does not guarantee that Make succeeds: factories are not
// called, so their results are not checked.
func (c *Container) Validate() error {
	g, errs := c.dependencyGraph()
	log := c.logger.Named("validate")
	log.Trace("dependency graph", "graph", g.String())

	for _, raw := range g.Vertices() {
		vp, ok := raw.(*paramVertex)
		if !ok {
			continue
		}

		// Every param has exactly one out edge, to its service.
		for _, vs := range g.OutEdges(vp) {
			resolvers := g.OutEdges(vs)
			if len(resolvers) == 0 {
				errs = append(errs, &ErrUnresolvedDependency{
					Target:  vp.Target.Name(),
					Param:   vp.Param.Name,
					Service: vp.Param.Service,
				})
				continue
			}

			for _, vr := range resolvers {
				if t, ok := assignable(vr, vp.Param); !ok {
					err := fmt.Errorf("argument %q: %s is not assignable to %s",
						vp.Param.Name, t, vp.Param.Type)
					errs = append(errs, &ErrConstruction{Type: vp.Target.Name(), Err: err})
				}
			}
		}
	}

	if c.cache.policy == KeyParameter {
		errs = append(errs, c.singletonKeyConflicts(g)...)
	}

	if len(errs) == 0 {
		return nil
	}

	// Map iteration is random, sort so the report is deterministic.
	sort.Slice(errs, func(i, j int) bool {
		return errs[i].Error() < errs[j].Error()
	})

	var result error
	for _, err := range errs {
		result = multierror.Append(result, err)
	}

	log.Debug("validation failed", "errors", len(errs))
	return result
}

// singletonKeyConflicts returns an error for every parameter name that
// consumes more than one singleton service.
func (c *Container) singletonKeyConflicts(g *graph.Graph) []error {
	services := make(map[string]map[string]struct{})
	for name, b := range c.bindings {
		if !b.singleton {
			continue
		}

		for _, raw := range g.InEdges(&serviceVertex{Name: name}) {
			vp, ok := raw.(*paramVertex)
			if !ok {
				continue
			}

			set, ok := services[vp.Param.Name]
			if !ok {
				set = make(map[string]struct{})
				services[vp.Param.Name] = set
			}
			set[name] = struct{}{}
		}
	}

	var errs []error
	for param, set := range services {
		if len(set) < 2 {
			continue
		}

		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)

		errs = append(errs, fmt.Errorf("%w: parameter %q consumes singletons %s",
			ErrSingletonKeyConflict, param, strings.Join(names, ", ")))
	}

	return errs
}
