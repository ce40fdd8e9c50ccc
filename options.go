// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Option configures a Container. Options are applied by New; every failing
// option is reported.
type Option func(*Container) error

// SingletonKey selects how cached singleton instances are keyed.
type SingletonKey int

const (
	// KeyParameter keys singleton instances by the name of the parameter
	// that consumes them. Two parameters with the same name share an
	// instance even when they consume different services. Differently
	// named parameters of the same service do not. This is the default.
	KeyParameter SingletonKey = iota

	// KeyService keys singleton instances by service name, so every
	// consumer of a singleton service shares one instance.
	KeyService
)

func (k SingletonKey) String() string {
	switch k {
	case KeyParameter:
		return "parameter"
	case KeyService:
		return "service"
	default:
		return fmt.Sprintf("SingletonKey(%d)", int(k))
	}
}

// DefaultTagName is the struct tag that marks constructor parameters.
const DefaultTagName = "ioc"

// WithLogger sets the logger used by the container. The default is the
// hclog default logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *Container) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}

		c.logger = l
		return nil
	}
}

// WithSingletonKey sets the singleton cache key policy.
func WithSingletonKey(k SingletonKey) Option {
	return func(c *Container) error {
		switch k {
		case KeyParameter, KeyService:
		default:
			return fmt.Errorf("unknown singleton key policy %s", k)
		}

		c.cache.policy = k
		return nil
	}
}

// WithTagName sets the struct tag read for constructor parameters.
func WithTagName(name string) Option {
	return func(c *Container) error {
		if name == "" {
			return errors.New("tag name cannot be empty")
		}

		c.tagName = name
		return nil
	}
}
