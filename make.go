// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-hclog"
)

// Make returns an instance of the service name.
//
// If name is bound to a Factory, the factory is called with the container
// and its result is returned as-is.
//
// Otherwise name is treated as a type to construct: the bound type if name
// is bound to a TypeRef, or the declared type with that canonical name if it
// is not bound at all. Each constructor parameter is satisfied from the
// binding of the service it requires:
//
//   - A singleton binding returns the cached instance for the parameter,
//     constructing it on the first use. See WithSingletonKey.
//   - A TypeRef binding constructs a new instance of the type.
//   - A Factory binding calls the factory.
//
// Dependencies are constructed with zero arguments; their own parameters are
// not resolved. The requested type itself is never cached, even if name is
// bound as a singleton.
//
// If any parameter cannot be satisfied Make returns an error and no value.
func (c *Container) Make(name string) (interface{}, error) {
	log := c.logger.Named("make").With("service", name)

	b, ok := c.bindings[name]
	if ok {
		if f, ok := b.resolver.(Factory); ok {
			log.Trace("calling factory")
			v, err := f(c)
			if err != nil {
				return nil, err
			}

			return v, nil
		}
	}

	ref, err := c.lookupType(name, b)
	if err != nil {
		return nil, err
	}

	v, err := c.build(log, name, ref)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// lookupType returns the type to construct for name. b may be nil.
func (c *Container) lookupType(name string, b *binding) (TypeRef, error) {
	if b != nil {
		if ref, ok := b.resolver.(TypeRef); ok {
			return ref, nil
		}
	}

	if ref, ok := c.types[name]; ok {
		return ref, nil
	}

	return TypeRef{}, &ErrConstruction{Type: name, Err: ErrTypeNotFound}
}

// build constructs ref with all of its parameters resolved.
func (c *Container) build(log hclog.Logger, target string, ref TypeRef) (reflect.Value, error) {
	params, err := parseParams(ref.typ, c.tagName)
	if err != nil {
		return reflect.Value{}, &ErrConstruction{Type: ref.Name(), Err: err}
	}

	args := make(map[string]reflect.Value, len(params))
	for _, p := range params {
		log := log.With("param", p.Name, "requires", p.Service)

		v, err := c.resolveParam(log, target, p)
		if err != nil {
			return reflect.Value{}, err
		}

		args[p.Name] = v
	}

	log.Trace("constructing", "type", ref.String(), "params", len(params))
	result, err := ref.construct(params, args)
	if err != nil {
		return reflect.Value{}, &ErrConstruction{Type: ref.Name(), Err: err}
	}

	return result, nil
}

// resolveParam returns the value for a single constructor parameter.
func (c *Container) resolveParam(log hclog.Logger, target string, p *param) (reflect.Value, error) {
	b, ok := c.bindings[p.Service]
	if !ok {
		return reflect.Value{}, &ErrUnresolvedDependency{
			Target:  target,
			Param:   p.Name,
			Service: p.Service,
		}
	}

	if !b.singleton {
		log.Trace("constructing dependency")
		return c.dependency(b)
	}

	v, hit, err := c.cache.get(p, func() (reflect.Value, error) {
		return c.dependency(b)
	})
	if err != nil {
		return reflect.Value{}, err
	}

	log.Trace("singleton dependency", "key", c.cache.key(p), "cached", hit, "cache_size", c.cache.len())
	return v, nil
}

// dependency builds the value for the binding b without resolving any
// further parameters.
func (c *Container) dependency(b *binding) (reflect.Value, error) {
	switch r := b.resolver.(type) {
	case Factory:
		raw, err := r(c)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(raw), nil

	case TypeRef:
		v, err := r.construct(nil, nil)
		if err != nil {
			return reflect.Value{}, &ErrConstruction{Type: r.Name(), Err: err}
		}

		return v, nil

	default:
		panic(fmt.Sprintf("unknown resolver: %T", b.resolver))
	}
}
