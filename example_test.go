// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ioc_test

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-ioc"
)

type Database interface {
	Driver() string
}

type MySQLConnection struct {
	Host string
}

func (c *MySQLConnection) Driver() string { return "mysql" }

type UserService struct {
	DB Database `ioc:"db,service=Db"`
}

func quietContainer(opts ...ioc.Option) *ioc.Container {
	opts = append(opts, ioc.WithLogger(hclog.NewNullLogger()))
	c, err := ioc.New(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

func Example() {
	c := quietContainer()

	if err := c.Singleton("Db", ioc.TypeOf[*MySQLConnection]()); err != nil {
		panic(err)
	}
	if err := c.Bind("Users", ioc.TypeOf[*UserService](), false); err != nil {
		panic(err)
	}

	a, err := ioc.Resolve[*UserService](c, "Users")
	if err != nil {
		panic(err)
	}
	b, err := ioc.Resolve[*UserService](c, "Users")
	if err != nil {
		panic(err)
	}

	fmt.Println(a.DB.Driver())
	fmt.Println(a == b, a.DB == b.DB)
	// Output:
	// mysql
	// false true
}

func ExampleFactory() {
	c := quietContainer()

	err := c.Bind("Greeting", ioc.Factory(func(*ioc.Container) (interface{}, error) {
		return "hello", nil
	}), false)
	if err != nil {
		panic(err)
	}

	v, err := c.Make("Greeting")
	if err != nil {
		panic(err)
	}

	fmt.Println(v)
	// Output: hello
}

func ExampleContainer_Validate() {
	c := quietContainer()

	if err := c.Declare(ioc.TypeOf[*UserService]()); err != nil {
		panic(err)
	}

	fmt.Println(c.Validate() != nil)
	// Output: true
}

func ExampleWithSingletonKey() {
	type Replicated struct {
		Primary Database `ioc:"primary,service=Db"`
		Replica Database `ioc:"replica,service=Db"`
	}

	for _, k := range []ioc.SingletonKey{ioc.KeyParameter, ioc.KeyService} {
		c := quietContainer(ioc.WithSingletonKey(k))
		if err := c.Singleton("Db", ioc.TypeOf[*MySQLConnection]()); err != nil {
			panic(err)
		}
		if err := c.Bind("Replicated", ioc.TypeOf[*Replicated](), false); err != nil {
			panic(err)
		}

		r, err := ioc.Resolve[*Replicated](c, "Replicated")
		if err != nil {
			panic(err)
		}

		fmt.Println(k, r.Primary == r.Replica)
	}
	// Output:
	// parameter false
	// service true
}
