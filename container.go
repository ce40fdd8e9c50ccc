// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Container is the service registry and resolver. Create one with New.
//
// Unless otherwise documented, it is unsafe to call any method on Container
// concurrently.
type Container struct {
	logger  hclog.Logger
	tagName string

	// bindings maps service names to their binding.
	bindings map[string]*binding

	// types is the catalog of types that Make may construct for names
	// without a binding. Keys are canonical type names.
	types map[string]TypeRef

	cache *instanceCache
}

// binding is one registered service.
type binding struct {
	resolver  Resolver
	singleton bool
}

// New creates an empty Container.
func New(opts ...Option) (*Container, error) {
	c := &Container{
		logger:   hclog.L(),
		tagName:  DefaultTagName,
		bindings: make(map[string]*binding),
		types:    make(map[string]TypeRef),
		cache:    newInstanceCache(),
	}

	var err error
	for _, opt := range opts {
		if optErr := opt(c); optErr != nil {
			err = multierror.Append(err, optErr)
		}
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Bind registers r under name. If singleton is true, instances constructed
// for this service as a dependency are cached; see WithSingletonKey.
//
// Bind returns ErrDuplicateBinding if name is already bound and
// ErrInvalidBinding if the binding is malformed: an empty name, a nil
// resolver, or a singleton Factory. Factories encapsulate their own
// instantiation policy and are never cached.
func (c *Container) Bind(name string, r Resolver, singleton bool) error {
	if err := validateBinding(name, r, singleton); err != nil {
		return err
	}

	if _, ok := c.bindings[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBinding, name)
	}

	// A type whose canonical name is already in the catalog stays out of
	// it. The binding is still constructable by name.
	if ref, ok := r.(TypeRef); ok {
		if err := c.declare(ref); err != nil {
			c.logger.Debug("bound type not added to catalog", "name", name, "error", err)
		}
	}

	c.bindings[name] = &binding{
		resolver:  r,
		singleton: singleton,
	}

	c.logger.Debug("bound service", "name", name, "resolver", resolverString(r), "singleton", singleton)
	return nil
}

// Singleton binds name to the type r with singleton caching. It is the same
// as Bind(name, r, true).
func (c *Container) Singleton(name string, r TypeRef) error {
	return c.Bind(name, r, true)
}

// Declare adds types to the catalog so that Make can construct them by their
// canonical name without a binding. Types bound with Bind are declared
// automatically when their canonical name is free. Declaring the same type
// twice is a no-op, but declaring a different type under an existing name is
// an error.
func (c *Container) Declare(refs ...TypeRef) error {
	var result error
	for _, ref := range refs {
		if !ref.valid() {
			result = multierror.Append(result, fmt.Errorf("%w: type reference is nil", ErrInvalidBinding))
			continue
		}

		if err := c.declare(ref); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

func (c *Container) declare(ref TypeRef) error {
	name := ref.Name()
	if existing, ok := c.types[name]; ok {
		if existing.typ != ref.typ {
			return fmt.Errorf("type name %q already declared for %s, cannot declare %s",
				name, existing, ref)
		}

		return nil
	}

	c.types[name] = ref
	c.logger.Trace("declared type", "name", name, "type", ref.String())
	return nil
}

// Bound reports whether name has a binding.
func (c *Container) Bound(name string) bool {
	_, ok := c.bindings[name]
	return ok
}

// Names returns the sorted names of all bindings.
func (c *Container) Names() []string {
	result := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		result = append(result, k)
	}
	sort.Strings(result)

	return result
}

// validateBinding checks the inputs to Bind. All problems are reported.
func validateBinding(name string, r Resolver, singleton bool) error {
	var result error
	if name == "" {
		result = multierror.Append(result, fmt.Errorf(
			"%w: name cannot be empty", ErrInvalidBinding))
	}

	switch v := r.(type) {
	case nil:
		result = multierror.Append(result, fmt.Errorf(
			"%w: resolver cannot be nil", ErrInvalidBinding))

	case Factory:
		if v == nil {
			result = multierror.Append(result, fmt.Errorf(
				"%w: factory cannot be nil", ErrInvalidBinding))
		}

		if singleton {
			result = multierror.Append(result, fmt.Errorf(
				"%w: singleton requires a type reference, not a factory", ErrInvalidBinding))
		}

	case TypeRef:
		if !v.valid() {
			result = multierror.Append(result, fmt.Errorf(
				"%w: type reference is nil", ErrInvalidBinding))
		}
	}

	return result
}

func resolverString(r Resolver) string {
	switch v := r.(type) {
	case TypeRef:
		return v.String()
	case Factory:
		return "factory"
	default:
		return fmt.Sprintf("%T", r)
	}
}
