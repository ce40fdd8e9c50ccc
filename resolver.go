// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"reflect"
)

// Resolver is a construction strategy for a service. The only
// implementations are Factory and TypeRef.
type Resolver interface {
	resolver()
}

// Factory builds a service value from the container. The container never
// caches the result of a Factory; a factory that wants a shared instance
// must hold it itself.
type Factory func(c *Container) (interface{}, error)

func (Factory) resolver() {}

// TypeRef is a reference to a Go type that the container constructs by
// reflection. Use TypeOf to create one.
type TypeRef struct {
	typ reflect.Type
}

func (TypeRef) resolver() {}

// TypeOf returns the TypeRef for T. T is usually a pointer to a struct, in
// which case a new struct is allocated for every construction.
func TypeOf[T any]() TypeRef {
	return TypeRef{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// NameOf returns the canonical name of T. This is the name a constructor
// parameter of type T requires when its tag has no "service" option.
func NameOf[T any]() string {
	return typeName(reflect.TypeOf((*T)(nil)).Elem())
}

// Type returns the reflect.Type this reference points to.
func (r TypeRef) Type() reflect.Type { return r.typ }

// Name returns the canonical name of the type. Pointer indirections are
// stripped, so *app.MySQL and app.MySQL share the name "app.MySQL".
func (r TypeRef) Name() string {
	if r.typ == nil {
		return ""
	}

	return typeName(r.typ)
}

// String returns the Go syntax of the referenced type.
func (r TypeRef) String() string {
	if r.typ == nil {
		return "<nil>"
	}

	return r.typ.String()
}

func (r TypeRef) valid() bool { return r.typ != nil }

// construct creates a new value of the referenced type and sets the given
// arguments on the parameter fields. Parameters without an argument are left
// at their zero value, so construct(nil) is the zero-argument construction.
func (r TypeRef) construct(params []*param, args map[string]reflect.Value) (reflect.Value, error) {
	if r.typ.Kind() == reflect.Interface {
		return reflect.Value{}, fmt.Errorf("cannot construct interface type %s", r.typ)
	}

	// target is the struct (or plain value) we set fields on, result is
	// what we hand back to the caller.
	var result, target reflect.Value
	if r.typ.Kind() == reflect.Ptr {
		result = reflect.New(r.typ.Elem())
		target = result.Elem()
	} else {
		result = reflect.New(r.typ).Elem()
		target = result
	}

	for _, p := range params {
		// A nil value (such as a factory returning nil) leaves the
		// field at its zero value.
		v, ok := args[p.Name]
		if !ok || !v.IsValid() {
			continue
		}

		if !v.Type().AssignableTo(p.Type) {
			return reflect.Value{}, fmt.Errorf(
				"argument %q: %s is not assignable to %s", p.Name, v.Type(), p.Type)
		}

		target.Field(p.Index).Set(v)
	}

	return result, nil
}

// typeName returns the canonical service name for a type.
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.String()
}
