package main

import (
	"fmt"
	"io"

	"github.com/emc2/primefields/field"
	"github.com/emc2/primefields/fields/fe222"
	"github.com/emc2/primefields/fields/fe251"
	"github.com/emc2/primefields/fields/fe255"
	"github.com/emc2/primefields/fields/fe383"
	"github.com/emc2/primefields/fields/fe414"
	"github.com/emc2/primefields/fields/fe511"
)

// fieldBinding collects the handful of package-level functions every
// fields/* instantiation exposes, so fieldcheck can dispatch on --field
// without a type switch at every call site.
type fieldBinding struct {
	params     *field.Params
	fromBytes  func([]byte) (*field.Element, error)
	fromReader func(io.Reader) (*field.Element, error)
	random     func() (*field.Element, error)
}

var registry = map[string]fieldBinding{
	"fe222": {fe222.Params, fe222.FromBytes, fe222.FromReader, fe222.Random},
	"fe251": {fe251.Params, fe251.FromBytes, fe251.FromReader, fe251.Random},
	"fe255": {fe255.Params, fe255.FromBytes, fe255.FromReader, fe255.Random},
	"fe383": {fe383.Params, fe383.FromBytes, fe383.FromReader, fe383.Random},
	"fe414": {fe414.Params, fe414.FromBytes, fe414.FromReader, fe414.Random},
	"fe511": {fe511.Params, fe511.FromBytes, fe511.FromReader, fe511.Random},
}

func lookupField(name string) (fieldBinding, error) {
	b, ok := registry[name]
	if !ok {
		return fieldBinding{}, fmt.Errorf("fieldcheck: unknown field %q (want one of fe222, fe251, fe255, fe383, fe414, fe511)", name)
	}
	return b, nil
}
