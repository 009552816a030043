// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a map keyed by disjoint intervals.
package interval

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// Map is a map from disjoint closed intervals to values.
//
// A zero value is ready to use.
type Map[K cmp.Ordered, V any] struct {
	// Keys in this map are the ends of intervals in the map.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry of a [Map].
type Interval[K cmp.Ordered, V any] struct {
	// The range for this interval. Both ends are inclusive.
	Start, End K

	// The value associated with it; nil if there is no such interval.
	Value *V
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains key, if one exists.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	iter := m.tree.Iter()
	if !iter.Seek(key) || key < iter.Value().start {
		// Seek finds the least interval ending at or after key; it only
		// contains key if it also starts at or before it.
		return Interval[K, V]{}
	}
	return current(&iter)
}

// Intervals returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(current(&iter)) {
				return
			}
		}
	}
}

// Insert adds [start, end] to the map with the given value.
//
// If [start, end] overlaps an interval already present, nothing is inserted
// and the overlapping interval with the least start is returned. Otherwise
// the returned Interval has a nil Value.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// The least interval ending at or after start is the only candidate: the
	// intervals are disjoint, so any other overlapping one starts after it.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().start <= end {
		return current(&iter)
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

func current[K cmp.Ordered, V any](iter *btree.MapIter[K, *entry[K, V]]) Interval[K, V] {
	return Interval[K, V]{
		Start: iter.Value().start,
		End:   iter.Key(),
		Value: &iter.Value().value,
	}
}

type entry[K cmp.Ordered, V any] struct {
	start K
	value V
}
