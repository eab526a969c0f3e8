package csp

import (
	"reflect"
	"testing"
)

func TestNewBitSetDomain(t *testing.T) {
	d := NewBitSetDomain(9)
	if d.Count() != 9 {
		t.Errorf("Count() = %d, want 9", d.Count())
	}
	for v := 1; v <= 9; v++ {
		if !d.Has(v) {
			t.Errorf("Has(%d) = false, want true", v)
		}
	}
	if d.Has(0) || d.Has(10) {
		t.Error("domain contains out-of-range values")
	}
	if d.MaxValue() != 9 {
		t.Errorf("MaxValue() = %d, want 9", d.MaxValue())
	}
}

func TestNewBitSetDomain_Empty(t *testing.T) {
	d := NewBitSetDomain(0)
	if d.Count() != 0 {
		t.Errorf("Count() = %d, want 0", d.Count())
	}
}

func TestNewBitSetDomainFromValues(t *testing.T) {
	d := NewBitSetDomainFromValues(9, []int{2, 5, 7, 2})
	if got := d.Values(); !reflect.DeepEqual(got, []int{2, 5, 7}) {
		t.Errorf("Values() = %v, want [2 5 7]", got)
	}

	// Out-of-range values are ignored
	d = NewBitSetDomainFromValues(5, []int{0, 3, 6})
	if got := d.Values(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("Values() = %v, want [3]", got)
	}
}

func TestBitSetDomain_Remove(t *testing.T) {
	d := NewBitSetDomain(5)

	if !d.Remove(3) {
		t.Error("Remove(3) = false, want true")
	}
	if d.Has(3) {
		t.Error("Has(3) = true after Remove")
	}
	if d.Count() != 4 {
		t.Errorf("Count() = %d, want 4", d.Count())
	}

	// Removing an absent value is a no-op
	if d.Remove(3) {
		t.Error("Remove(3) = true on second removal")
	}
	if d.Remove(99) {
		t.Error("Remove(99) = true for out-of-range value")
	}
}

func TestBitSetDomain_Singleton(t *testing.T) {
	d := NewBitSetDomainFromValues(9, []int{7})
	if !d.IsSingleton() {
		t.Fatal("IsSingleton() = false, want true")
	}
	if d.SingletonValue() != 7 {
		t.Errorf("SingletonValue() = %d, want 7", d.SingletonValue())
	}

	d = NewBitSetDomainFromValues(9, []int{3, 7})
	if d.IsSingleton() {
		t.Error("IsSingleton() = true for two-value domain")
	}
}

func TestBitSetDomain_SingletonValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SingletonValue() did not panic on non-singleton domain")
		}
	}()
	NewBitSetDomain(3).SingletonValue()
}

func TestBitSetDomain_CloneIndependence(t *testing.T) {
	original := NewBitSetDomain(9)
	clone := original.Clone()

	clone.Remove(4)
	if !original.Has(4) {
		t.Error("mutating a clone changed the original domain")
	}

	original.Remove(8)
	if !clone.Has(8) {
		t.Error("mutating the original changed the clone")
	}
}

func TestBitSetDomain_Intersects(t *testing.T) {
	a := NewBitSetDomainFromValues(9, []int{1, 2, 3})
	b := NewBitSetDomainFromValues(9, []int{3, 4, 5})
	c := NewBitSetDomainFromValues(9, []int{6, 7})

	if !a.Intersects(b) {
		t.Error("a.Intersects(b) = false, want true")
	}
	if a.Intersects(c) {
		t.Error("a.Intersects(c) = true, want false")
	}
	if c.Intersects(NewBitSetDomainFromValues(9, nil)) {
		t.Error("Intersects(empty) = true, want false")
	}
}

func TestBitSetDomain_IntersectsDifferentSizes(t *testing.T) {
	small := NewBitSetDomainFromValues(3, []int{2})
	large := NewBitSetDomainFromValues(100, []int{2, 90})
	if !small.Intersects(large) {
		t.Error("Intersects across different max values = false, want true")
	}

	disjoint := NewBitSetDomainFromValues(100, []int{90})
	if small.Intersects(disjoint) {
		t.Error("Intersects = true for disjoint domains of different sizes")
	}
}

func TestBitSetDomain_Equal(t *testing.T) {
	a := NewBitSetDomainFromValues(9, []int{1, 5})
	b := NewBitSetDomainFromValues(9, []int{1, 5})
	c := NewBitSetDomainFromValues(9, []int{1, 6})

	if !a.Equal(b) {
		t.Error("Equal() = false for identical domains")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different domains")
	}
	if a.Equal(NewBitSetDomainFromValues(12, []int{1, 5})) {
		t.Error("Equal() = true for different max values")
	}
}

func TestBitSetDomain_IterateAscending(t *testing.T) {
	d := NewBitSetDomainFromValues(80, []int{70, 3, 41})
	var got []int
	d.IterateValues(func(v int) {
		got = append(got, v)
	})
	if !reflect.DeepEqual(got, []int{3, 41, 70}) {
		t.Errorf("IterateValues order = %v, want [3 41 70]", got)
	}
}

func TestBitSetDomain_String(t *testing.T) {
	tests := []struct {
		values []int
		want   string
	}{
		{nil, "{}"},
		{[]int{4}, "{4}"},
		{[]int{2, 3, 4}, "{2..4}"},
		{[]int{1, 3, 7}, "{1,3,7}"},
	}
	for _, tt := range tests {
		d := NewBitSetDomainFromValues(9, tt.values)
		if got := d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
