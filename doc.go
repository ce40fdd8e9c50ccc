// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package ioc is a small inversion-of-control container for Go.
//
// A Container maps service names to a Resolver. A Resolver is either a
// Factory, which is called with the container and returns a ready value, or
// a TypeRef, which names a Go type that the container constructs itself.
// TypeRef bindings may be flagged as singletons.
//
// The primary usage of this library is via Bind, Singleton and Make. See
// Make for the details of how dependencies are resolved.
//
// # Constructor Parameters
//
// Go reflection doesn't enable accessing function parameter names, so a
// type declares its constructor parameters as exported struct fields with an
// "ioc" tag. The tag's first part is the parameter name (the field name is
// used if it is empty) and the "service" option names the service that
// satisfies it (the canonical name of the field type is used otherwise):
//
//	type UserService struct {
//	    DB     Database `ioc:"db,service=Db"`
//	    Logger *Logger  `ioc:""`
//	    cache  map[string]*User
//	}
//
// Parameter names are always lowercase. A tag of "-" excludes the field.
//
// # Dependency Depth
//
// Dependencies are constructed with zero arguments: the container fills the
// parameters of the requested type, but not the parameters of its
// dependencies. A dependency whose own fields must be populated should be
// bound to a Factory.
//
// # Singletons
//
// Singleton instances are cached by key. By default the key is the name of
// the parameter consuming the dependency, so two differently named
// parameters of the same singleton service receive different instances.
// The key ignores the service: parameters named "db" that consume two
// different singleton services both receive whichever instance was
// constructed first. Validate reports such parameter names with
// ErrSingletonKeyConflict. Use WithSingletonKey(KeyService) to share one
// instance per service instead.
//
// # Concurrency
//
// A Container performs no locking. Callers that share a Container between
// goroutines must serialize calls to Bind and Make.
package ioc
