package collection

import (
	"sort"

	"github.com/kbukum/listkit/errors"
	"github.com/kbukum/listkit/validation"
)

// ViewFunc computes a read-only projection over the collection. It runs on
// every read of the view; it must not mutate the collection.
type ViewFunc[T comparable] func(*Collection[T]) any

// AddView registers a named projection. The name must be a valid
// identifier and fn must be non-nil; both are reported as registration
// errors. Views live for the lifetime of the collection.
func (c *Collection[T]) AddView(name string, fn ViewFunc[T]) error {
	v := validation.New()
	v.Required("name", name)
	v.Identifier("name", name)
	v.Check(fn != nil, "fn", "is required")
	if err := v.Error(); err != nil {
		return err
	}
	if _, exists := c.views[name]; exists {
		return errors.AlreadyExists("view", name)
	}

	c.views[name] = fn
	return nil
}

// View recomputes and returns the named projection. Reading between two
// mutations reflects the mutated sequence without re-registration.
func (c *Collection[T]) View(name string) (any, error) {
	fn, ok := c.views[name]
	if !ok {
		return nil, errors.NotFound("view", name)
	}
	return fn(c), nil
}

// Views returns the registered view names in sorted order.
func (c *Collection[T]) Views() []string {
	names := make([]string, 0, len(c.views))
	for name := range c.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
