package collection

import (
	"testing"

	"github.com/kbukum/listkit/errors"
)

func TestAddFeatureUnknown(t *testing.T) {
	c := New[int]()
	err := c.AddFeature("levitate")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if len(c.Features()) != 0 {
		t.Errorf("expected nothing registered, got %v", c.Features())
	}
}

func TestAddFeatureUnknownRegistersNothing(t *testing.T) {
	c := New[int]()
	err := c.AddFeature(FeatureCount, "levitate")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(c.Features()) != 0 {
		t.Errorf("expected atomic failure, got %v", c.Features())
	}
}

func TestAddAllFeatures(t *testing.T) {
	c := New[int]()
	c.AddAllFeatures()
	if len(c.Features()) != len(FeatureNames()) {
		t.Errorf("Features = %v, want all of %v", c.Features(), FeatureNames())
	}
}

func TestCallFeatureUnregistered(t *testing.T) {
	c := New[int]()
	_, err := c.CallFeature(FeatureCount)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestCallFeatures(t *testing.T) {
	c := New[int](WithItems(3, 1, 3, 2))
	c.AddAllFeatures()

	tests := []struct {
		name    string
		feature string
		args    []any
		check   func(t *testing.T, got any)
	}{
		{"count", FeatureCount, nil, func(t *testing.T, got any) {
			if got != 4 {
				t.Errorf("count = %v, want 4", got)
			}
		}},
		{"first", FeatureFirst, nil, func(t *testing.T, got any) {
			if got != 3 {
				t.Errorf("first = %v, want 3", got)
			}
		}},
		{"last", FeatureLast, nil, func(t *testing.T, got any) {
			if got != 2 {
				t.Errorf("last = %v, want 2", got)
			}
		}},
		{"contains hit", FeatureContains, []any{1}, func(t *testing.T, got any) {
			if got != true {
				t.Errorf("contains = %v, want true", got)
			}
		}},
		{"contains miss", FeatureContains, []any{9}, func(t *testing.T, got any) {
			if got != false {
				t.Errorf("contains = %v, want false", got)
			}
		}},
		{"index-of", FeatureIndexOf, []any{2}, func(t *testing.T, got any) {
			if got != 3 {
				t.Errorf("index-of = %v, want 3", got)
			}
		}},
		{"reverse", FeatureReverse, nil, func(t *testing.T, got any) {
			r := got.([]int)
			if len(r) != 4 || r[0] != 2 || r[3] != 3 {
				t.Errorf("reverse = %v", r)
			}
		}},
		{"unique", FeatureUnique, nil, func(t *testing.T, got any) {
			u := got.([]int)
			if len(u) != 3 {
				t.Errorf("unique = %v, want 3 items", u)
			}
		}},
		{"take", FeatureTake, []any{2}, func(t *testing.T, got any) {
			s := got.([]int)
			if len(s) != 2 || s[0] != 3 || s[1] != 1 {
				t.Errorf("take = %v, want [3 1]", s)
			}
		}},
		{"drop", FeatureDrop, []any{3}, func(t *testing.T, got any) {
			s := got.([]int)
			if len(s) != 1 || s[0] != 2 {
				t.Errorf("drop = %v, want [2]", s)
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.CallFeature(tc.feature, tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, got)
		})
	}
}

func TestCallFeatureArgErrors(t *testing.T) {
	c := New[int](WithItems(1))
	c.AddAllFeatures()

	_, err := c.CallFeature(FeatureContains)
	if errors.CodeOf(err) != errors.ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD for absent arg, got %v", err)
	}

	_, err = c.CallFeature(FeatureContains, "not-an-int")
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for wrong arg type, got %v", err)
	}

	_, err = c.CallFeature(FeatureTake, "two")
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for non-int count, got %v", err)
	}
}

func TestFeatureReflectsLiveSequence(t *testing.T) {
	c := New[string]()
	c.AddFeature(FeatureCount, FeatureContains)

	got, _ := c.CallFeature(FeatureCount)
	if got != 0 {
		t.Fatalf("count = %v, want 0", got)
	}

	c.Add("a", "b")
	got, _ = c.CallFeature(FeatureCount)
	if got != 2 {
		t.Errorf("count after add = %v, want 2", got)
	}
	got, _ = c.CallFeature(FeatureContains, "b")
	if got != true {
		t.Errorf("contains(b) = %v, want true", got)
	}
}

func TestFeatureEmptySequence(t *testing.T) {
	c := New[int]()
	c.AddAllFeatures()

	got, err := c.CallFeature(FeatureFirst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("first on empty = %v, want nil", got)
	}
	got, err = c.CallFeature(FeatureLast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("last on empty = %v, want nil", got)
	}
}

func TestFeatureFuncDirect(t *testing.T) {
	c := New[int](WithItems(1, 2))
	c.AddFeature(FeatureCount)

	fn, err := c.Feature(FeatureCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fn([]int{9, 9, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("count = %v, want 3", got)
	}
}
