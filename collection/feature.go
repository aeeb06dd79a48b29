package collection

import (
	"fmt"
	"sort"

	"github.com/kbukum/listkit/errors"
	"github.com/kbukum/listkit/util"
)

// FeatureFunc is the fixed signature every feature forwards through: the
// item sequence first, then the caller's arguments.
type FeatureFunc[T comparable] func(items []T, args ...any) (any, error)

// Feature names available through AddFeature / AddAllFeatures.
const (
	FeatureFirst    = "first"
	FeatureLast     = "last"
	FeatureCount    = "count"
	FeatureContains = "contains"
	FeatureIndexOf  = "index-of"
	FeatureReverse  = "reverse"
	FeatureUnique   = "unique"
	FeatureTake     = "take"
	FeatureDrop     = "drop"
)

// builtinFeatures is the static table mapping feature names to their
// utility functions, instantiated per item type.
func builtinFeatures[T comparable]() map[string]FeatureFunc[T] {
	return map[string]FeatureFunc[T]{
		FeatureFirst: func(items []T, args ...any) (any, error) {
			v, ok := util.First(items)
			if !ok {
				return nil, nil
			}
			return v, nil
		},
		FeatureLast: func(items []T, args ...any) (any, error) {
			v, ok := util.Last(items)
			if !ok {
				return nil, nil
			}
			return v, nil
		},
		FeatureCount: func(items []T, args ...any) (any, error) {
			return len(items), nil
		},
		FeatureContains: func(items []T, args ...any) (any, error) {
			item, err := argItem[T](args, 0)
			if err != nil {
				return nil, err
			}
			return util.Contains(items, item), nil
		},
		FeatureIndexOf: func(items []T, args ...any) (any, error) {
			item, err := argItem[T](args, 0)
			if err != nil {
				return nil, err
			}
			return util.IndexOf(items, item), nil
		},
		FeatureReverse: func(items []T, args ...any) (any, error) {
			return util.Reverse(items), nil
		},
		FeatureUnique: func(items []T, args ...any) (any, error) {
			return util.Unique(items), nil
		},
		FeatureTake: func(items []T, args ...any) (any, error) {
			n, err := argInt(args, 0)
			if err != nil {
				return nil, err
			}
			return util.Take(items, n), nil
		},
		FeatureDrop: func(items []T, args ...any) (any, error) {
			n, err := argInt(args, 0)
			if err != nil {
				return nil, err
			}
			return util.Drop(items, n), nil
		},
	}
}

// FeatureNames returns every feature name in the builtin table, sorted.
func FeatureNames() []string {
	names := []string{
		FeatureFirst, FeatureLast, FeatureCount, FeatureContains,
		FeatureIndexOf, FeatureReverse, FeatureUnique, FeatureTake, FeatureDrop,
	}
	sort.Strings(names)
	return names
}

// AddFeature registers the named features on the collection. An unknown
// name fails the whole call before anything is registered.
func (c *Collection[T]) AddFeature(names ...string) error {
	table := builtinFeatures[T]()
	for _, name := range names {
		if _, ok := table[name]; !ok {
			return errors.NotFound("feature", name)
		}
	}
	for _, name := range names {
		c.features[name] = table[name]
	}
	return nil
}

// AddAllFeatures registers every builtin feature.
func (c *Collection[T]) AddAllFeatures() {
	for name, fn := range builtinFeatures[T]() {
		c.features[name] = fn
	}
}

// Feature returns the registered feature bound to nothing yet; callers
// pass the sequence themselves. Most callers want CallFeature instead.
func (c *Collection[T]) Feature(name string) (FeatureFunc[T], error) {
	fn, ok := c.features[name]
	if !ok {
		return nil, errors.NotFound("feature", name)
	}
	return fn, nil
}

// CallFeature invokes a registered feature with the current item sequence
// as first argument, forwarding args.
func (c *Collection[T]) CallFeature(name string, args ...any) (any, error) {
	fn, err := c.Feature(name)
	if err != nil {
		return nil, err
	}
	return fn(c.Items(), args...)
}

// Features returns the registered feature names in sorted order.
func (c *Collection[T]) Features() []string {
	names := make([]string, 0, len(c.features))
	for name := range c.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- argument helpers ---

func argItem[T comparable](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, errors.MissingField(fmt.Sprintf("args[%d]", i))
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, errors.InvalidInput(fmt.Sprintf("args[%d]", i),
			fmt.Sprintf("expected item type, got %T", args[i]))
	}
	return v, nil
}

func argInt(args []any, i int) (int, error) {
	if i >= len(args) {
		return 0, errors.MissingField(fmt.Sprintf("args[%d]", i))
	}
	n, ok := args[i].(int)
	if !ok {
		return 0, errors.InvalidInput(fmt.Sprintf("args[%d]", i),
			fmt.Sprintf("expected int, got %T", args[i]))
	}
	return n, nil
}
