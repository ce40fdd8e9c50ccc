// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateBinding is returned by Bind when the name is already bound.
	ErrDuplicateBinding = errors.New("service already bound")

	// ErrInvalidBinding is returned by Bind for a binding that can never be
	// valid, such as a singleton Factory.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrTypeNotFound is wrapped in an ErrConstruction when Make is called
	// with a name that is neither bound nor declared.
	ErrTypeNotFound = errors.New("type not found")

	// ErrSingletonKeyConflict is reported by Validate when singleton
	// instances are keyed by parameter and one parameter name consumes
	// more than one singleton service.
	ErrSingletonKeyConflict = errors.New("singleton instance shared between services")
)

// ErrUnresolvedDependency is the error returned when a constructor parameter
// requires a service that has no binding.
type ErrUnresolvedDependency struct {
	// Target is the name of the type being constructed.
	Target string

	// Param is the local name of the parameter that could not be satisfied.
	Param string

	// Service is the service name the parameter requires.
	Service string
}

func (e *ErrUnresolvedDependency) Error() string {
	return fmt.Sprintf("service %s not found (parameter %q of %s)",
		e.Service, e.Param, e.Target)
}

// ErrConstruction wraps any failure to build a value by reflection: an
// unknown type, a type that cannot be instantiated, a tag that cannot be
// parsed, or an argument of the wrong type.
type ErrConstruction struct {
	// Type is the name of the type that failed to construct.
	Type string

	// Err is the underlying failure.
	Err error
}

func (e *ErrConstruction) Error() string {
	return fmt.Sprintf("error constructing %s: %s", e.Type, e.Err)
}

func (e *ErrConstruction) Unwrap() error { return e.Err }

var (
	_ error = (*ErrUnresolvedDependency)(nil)
	_ error = (*ErrConstruction)(nil)
)
