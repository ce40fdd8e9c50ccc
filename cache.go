// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc

import "reflect"

// instanceCache holds constructed singleton instances. Entries are never
// removed; a cached instance lives as long as the container.
type instanceCache struct {
	policy    SingletonKey
	instances map[string]reflect.Value
}

func newInstanceCache() *instanceCache {
	return &instanceCache{
		policy:    KeyParameter,
		instances: make(map[string]reflect.Value),
	}
}

// key returns the cache key for the service consumed by the parameter p.
func (c *instanceCache) key(p *param) string {
	if c.policy == KeyService {
		return p.Service
	}

	return p.Name
}

// get returns the cached instance for p, calling build and storing the
// result on a miss. A failed build stores nothing.
func (c *instanceCache) get(p *param, build func() (reflect.Value, error)) (reflect.Value, bool, error) {
	k := c.key(p)
	if v, ok := c.instances[k]; ok {
		return v, true, nil
	}

	v, err := build()
	if err != nil {
		return reflect.Value{}, false, err
	}

	c.instances[k] = v
	return v, false, nil
}

func (c *instanceCache) len() int { return len(c.instances) }
