// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import (
	"fmt"
	"reflect"
	"strings"
)

// param is a single constructor parameter of a type: an exported struct
// field carrying the container's tag.
type param struct {
	// Index is the index using reflect.Value.Field that can be used to
	// set this parameter on the constructed struct.
	Index int

	// Name is the local parameter name. This is always lowercase.
	Name string

	// Service is the name of the service that satisfies this parameter.
	Service string

	// Type is the Go type of the field.
	Type reflect.Type
}

func (p *param) String() string {
	return fmt.Sprintf("%s %s", p.Name, p.Service)
}

// parseParams returns the constructor parameters of t in field order. Types
// that are not structs or pointers to structs have no parameters.
func parseParams(t reflect.Type, tagName string) ([]*param, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, nil
	}

	var result []*param
	seen := make(map[string]string)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		tag, ok := sf.Tag.Lookup(tagName)
		if !ok || tag == "-" {
			continue
		}

		// We can't set unexported fields, and silently skipping a field
		// that asked to be injected would only hide the problem.
		if sf.PkgPath != "" {
			return nil, fmt.Errorf("field %s is unexported and cannot be injected", sf.Name)
		}

		// name is the name of the parameter.
		name := sf.Name

		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}

		// If we have fields set after the comma, then we want to
		// parse those as values.
		options := make(map[string]string)
		for _, v := range parts[1:] {
			idx := strings.Index(v, "=")
			if idx == -1 {
				options[v] = ""
			} else {
				options[v[:idx]] = v[idx+1:]
			}
		}

		// Name is always lowercase
		name = strings.ToLower(name)

		service := options["service"]
		if service == "" {
			service = typeName(sf.Type)
		}

		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf(
				"fields %s and %s both declare parameter %q", prev, sf.Name, name)
		}
		seen[name] = sf.Name

		result = append(result, &param{
			Index:   i,
			Name:    name,
			Service: service,
			Type:    sf.Type,
		})
	}

	return result, nil
}
