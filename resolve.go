// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"reflect"
)

// Resolve calls Make and asserts that the result is a T. An error is
// returned if Make fails or the result is some other type.
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T

	raw, err := c.Make(name)
	if err != nil {
		return zero, err
	}

	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("service %q resolved to %T, not %s",
			name, raw, reflect.TypeOf((*T)(nil)).Elem())
	}

	return v, nil
}
