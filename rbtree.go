// Copyright © 2026, the rbtree authors.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package rbtree provides a sorted map backed by a red-black tree.
//
// The map keeps its entries ordered by key at all times and guarantees
// O(log n) worst-case cost for insertion, lookup and removal.
package rbtree

import (
	"cmp"
	"iter"
)

// Tree - delineate sorted map entity.
//
// A Tree is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking, and no mutation may run
// while an iteration obtained from All or Backward is in progress.
type Tree[K cmp.Ordered, V any] interface {
	// Insert stores value under key. If the key was already present its
	// value is overwritten in place and the previous value is returned
	// with replaced set to true.
	Insert(key K, value V) (prev V, replaced bool)

	// Get returns the value stored under key, or the zero value and
	// false if the key is absent.
	Get(key K) (value V, ok bool)

	// GetKeyValue returns the stored key and value for key.
	GetKeyValue(key K) (K, V, bool)

	// MustGet returns the value stored under key and panics if the key
	// is absent. Use Get when presence is not guaranteed.
	MustGet(key K) V

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// Remove deletes the entry for key and returns its value, or the
	// zero value and false if the key is absent.
	Remove(key K) (value V, ok bool)

	// RemoveEntry deletes the entry for key and returns the stored
	// key-value pair.
	RemoveEntry(key K) (K, V, bool)

	// First and Last return the minimum and maximum entry.
	First() (K, V, bool)
	Last() (K, V, bool)

	// PopFirst and PopLast remove and return the minimum and maximum
	// entry.
	PopFirst() (K, V, bool)
	PopLast() (K, V, bool)

	// All returns an in-order iterator over the entries, ascending by
	// key. Backward is the descending mirror.
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]

	// Clear removes all entries.
	Clear()

	// Len returns the number of entries.
	Len() int

	// IsEmpty reports whether the tree holds no entries.
	IsEmpty() bool

	// DumpString renders the node graph with colors for debugging.
	DumpString() string
}

// New - creates a new empty instance of a red-black tree sorted map.
func New[K cmp.Ordered, V any]() Tree[K, V] {
	return newTree[K, V]()
}
