// Package csp implements a generic finite-domain constraint
// satisfaction solver. A problem is built by registering variables
// with candidate-value domains and pairwise compatibility constraints
// in a Store, and solved by combining AC-3 arc-consistency propagation
// with recursive backtracking search.
//
// This file defines the Domain interface for representing finite
// domains over discrete values, together with the bitset-backed
// implementation used throughout the solver.
package csp

import (
	"fmt"
	"math/bits"
	"strings"
)

// Domain represents the current set of legal candidate values for one
// variable. Values are 1-indexed integers in the range [1, MaxValue].
//
// A domain only ever shrinks: Remove is the sole mutating operation,
// and it operates in place. A domain of size 1 means the variable is
// assigned; size 0 signals a contradiction; size >1 means undecided.
//
// Each Assignment snapshot owns its domains outright. Domains are
// never shared between snapshots -- Clone produces an independent copy
// whose mutations are invisible to the original.
type Domain interface {
	// Count returns the number of values in the domain.
	// An empty domain (Count() == 0) represents a contradiction.
	Count() int

	// Has returns true if the domain contains the given value.
	Has(value int) bool

	// Remove deletes the value from the domain in place.
	// Reports whether the value was present.
	Remove(value int) bool

	// IsSingleton returns true if the domain contains exactly one value.
	// Singleton domains represent variables that have been decided.
	IsSingleton() bool

	// SingletonValue returns the single value if IsSingleton() is true.
	// Panics if the domain is not a singleton.
	SingletonValue() int

	// IterateValues calls f for each value in ascending order.
	// The function must not modify the domain during iteration.
	IterateValues(f func(value int))

	// Values returns all values in ascending order as a fresh slice.
	// Safe to iterate while removing values from the domain.
	Values() []int

	// Intersects reports whether this domain shares at least one value
	// with other. This is the support check at the heart of Revise.
	Intersects(other Domain) bool

	// Clone returns an independent deep copy of the domain.
	Clone() Domain

	// Equal returns true if this domain contains exactly the same
	// values as other.
	Equal(other Domain) bool

	// MaxValue returns the maximum possible value in this domain type.
	MaxValue() int

	// String returns a human-readable representation of the domain.
	String() string
}

// BitSetDomain is a compact implementation of Domain using bitsets.
// Each value is represented by a single bit in a uint64 word array,
// giving O(1) membership tests and word-at-a-time support checks.
//
// Memory usage: (maxValue + 63) / 64 * 8 bytes.
type BitSetDomain struct {
	maxValue int      // Maximum value (inclusive), e.g. 9 for Sudoku
	words    []uint64 // Bit array: bit i represents value i+1
}

// NewBitSetDomain creates a domain containing every value from 1 to
// maxValue inclusive. A non-positive maxValue yields an empty domain.
func NewBitSetDomain(maxValue int) *BitSetDomain {
	if maxValue <= 0 {
		return &BitSetDomain{maxValue: 0, words: nil}
	}

	d := &BitSetDomain{
		maxValue: maxValue,
		words:    make([]uint64, (maxValue+63)/64),
	}
	for i := 0; i < maxValue; i++ {
		d.words[i/64] |= 1 << uint(i%64)
	}
	return d
}

// NewBitSetDomainFromValues creates a domain containing only the given
// values. Values outside [1, maxValue] are ignored.
func NewBitSetDomainFromValues(maxValue int, values []int) *BitSetDomain {
	if maxValue <= 0 {
		return &BitSetDomain{maxValue: 0, words: nil}
	}

	d := &BitSetDomain{
		maxValue: maxValue,
		words:    make([]uint64, (maxValue+63)/64),
	}
	for _, v := range values {
		if v >= 1 && v <= maxValue {
			d.words[(v-1)/64] |= 1 << uint((v-1)%64)
		}
	}
	return d
}

// Count returns the number of values in the domain.
// Uses hardware popcount instructions (O(number of words)).
func (d *BitSetDomain) Count() int {
	count := 0
	for _, word := range d.words {
		count += bits.OnesCount64(word)
	}
	return count
}

// Has returns true if the domain contains the value. O(1).
func (d *BitSetDomain) Has(value int) bool {
	if value < 1 || value > d.maxValue {
		return false
	}
	return (d.words[(value-1)/64]>>uint((value-1)%64))&1 == 1
}

// Remove clears the value's bit in place.
// Reports whether the value was present.
func (d *BitSetDomain) Remove(value int) bool {
	if !d.Has(value) {
		return false
	}
	d.words[(value-1)/64] &^= 1 << uint((value-1)%64)
	return true
}

// IsSingleton returns true if the domain contains exactly one value.
func (d *BitSetDomain) IsSingleton() bool {
	return d.Count() == 1
}

// SingletonValue returns the single value in the domain.
// Panics if the domain is not a singleton.
func (d *BitSetDomain) SingletonValue() int {
	count := 0
	value := 0
	for i, word := range d.words {
		c := bits.OnesCount64(word)
		if c > 0 {
			count += c
			value = i*64 + bits.TrailingZeros64(word) + 1
		}
	}
	if count != 1 {
		panic(fmt.Sprintf("SingletonValue called on domain of size %d", count))
	}
	return value
}

// IterateValues calls f for each value in ascending order.
func (d *BitSetDomain) IterateValues(f func(value int)) {
	for wordIdx, word := range d.words {
		for word != 0 {
			lowestBit := word & -word
			f(wordIdx*64 + bits.TrailingZeros64(word) + 1)
			word &^= lowestBit
		}
	}
}

// Values returns all values in ascending order as a fresh slice.
func (d *BitSetDomain) Values() []int {
	values := make([]int, 0, d.Count())
	d.IterateValues(func(v int) {
		values = append(values, v)
	})
	return values
}

// Intersects reports whether any value is present in both domains.
// For two BitSetDomains this is a word-wise AND without allocation.
func (d *BitSetDomain) Intersects(other Domain) bool {
	otherBitSet, ok := other.(*BitSetDomain)
	if !ok {
		found := false
		other.IterateValues(func(v int) {
			if !found && d.Has(v) {
				found = true
			}
		})
		return found
	}

	n := len(d.words)
	if len(otherBitSet.words) < n {
		n = len(otherBitSet.words)
	}
	for i := 0; i < n; i++ {
		if d.words[i]&otherBitSet.words[i] != 0 {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy of the domain.
func (d *BitSetDomain) Clone() Domain {
	newWords := make([]uint64, len(d.words))
	copy(newWords, d.words)
	return &BitSetDomain{
		maxValue: d.maxValue,
		words:    newWords,
	}
}

// Equal returns true if both domains contain exactly the same values.
func (d *BitSetDomain) Equal(other Domain) bool {
	otherBitSet, ok := other.(*BitSetDomain)
	if !ok {
		return false
	}
	if d.maxValue != otherBitSet.maxValue || len(d.words) != len(otherBitSet.words) {
		return false
	}
	for i := range d.words {
		if d.words[i] != otherBitSet.words[i] {
			return false
		}
	}
	return true
}

// MaxValue returns the maximum value that can be in this domain.
func (d *BitSetDomain) MaxValue() int {
	return d.maxValue
}

// String returns a human-readable representation of the domain.
// Example: "{1,3,5}" or "{1..9}" for consecutive ranges.
func (d *BitSetDomain) String() string {
	values := d.Values()
	if len(values) == 0 {
		return "{}"
	}
	if len(values) == 1 {
		return fmt.Sprintf("{%d}", values[0])
	}
	if isConsecutiveRange(values) {
		return fmt.Sprintf("{%d..%d}", values[0], values[len(values)-1])
	}

	var builder strings.Builder
	builder.WriteString("{")
	for i, v := range values {
		if i > 0 {
			builder.WriteString(",")
		}
		fmt.Fprintf(&builder, "%d", v)
	}
	builder.WriteString("}")
	return builder.String()
}

func isConsecutiveRange(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}
