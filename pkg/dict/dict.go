// Package dict pairs an exact ordered store with a bloom filter, the same
// shape the filter takes in front of an sstable: the filter answers
// definite misses without touching the store.
package dict

import (
	"bloom"

	"github.com/huandu/skiplist"
	"github.com/sirupsen/logrus"
)

type Dict struct {
	filter *bloom.Filter
	list   *skiplist.SkipList

	// lookups answered by the filter alone
	filtered uint64
}

// New creates a dictionary expecting up to expectedWords entries, with the
// filter sized for the given false positive rate.
func New(expectedWords int, falsePositiveRate float64) (*Dict, error) {
	f, err := bloom.NewWithRate(expectedWords, falsePositiveRate, bloom.DefaultOption)
	if err != nil {
		return nil, err
	}
	return &Dict{
		filter: f,
		list:   skiplist.New(skiplist.String),
	}, nil
}

// Put stores definition under word, replacing any previous definition.
func (d *Dict) Put(word, definition string) {
	d.filter.Insert(word)
	d.list.Set(word, definition)
}

// Get returns the definition stored under word.
func (d *Dict) Get(word string) (string, bool) {
	if !d.filter.Query(word) {
		d.filtered++
		logrus.Debugf("filter rejected %q, skipping list lookup", word)
		return "", false
	}
	v, ok := d.list.GetValue(word)
	if !ok {
		// filter false positive
		return "", false
	}
	return v.(string), true
}

func (d *Dict) Len() int {
	return d.list.Len()
}

// FilteredLookups returns how many Gets were answered by the filter
// without touching the skiplist.
func (d *Dict) FilteredLookups() uint64 {
	return d.filtered
}

// Filter exposes the underlying bloom filter for diagnostics.
func (d *Dict) Filter() *bloom.Filter {
	return d.filter
}
