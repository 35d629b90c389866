// Package merge applies a set of managed values onto an existing config.
package merge

import (
	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/dfconfig"
	"github.com/thirteen37/dfconfig/internal/format"
	"github.com/thirteen37/dfconfig/internal/keys"
)

// Change records one key written by Merge.
type Change struct {
	Key   string
	Old   string
	New   string
	Added bool // the key was not present before
}

// Merge combines managed values with the current config, preserving the
// values of user-owned keys that current already defines.
//
// Algorithm:
// 1. Start with a copy of current (or an empty document if nil)
// 2. For each managed key, in order:
//   - If the key is user-owned and current defines it, keep current's value
//   - If the value already matches, leave the entry untouched
//   - Otherwise set the value, appending the key if it is new
//
// Comments, blank lines and unchanged entries of current are kept as written.
func Merge(current *dfconfig.Document, managed *orderedmap.OrderedMap, preserve []keys.Selector) (*dfconfig.Document, []Change) {
	var result *dfconfig.Document
	if current == nil {
		result = dfconfig.New()
	} else {
		result = current.Clone()
	}
	if managed == nil {
		return result, nil
	}

	var changes []Change
	for _, key := range managed.Keys() {
		value := format.StringValue(managed, key)
		old, exists := result.Get(key)

		if exists && keys.Any(preserve, key) {
			continue
		}
		if exists && old == value {
			continue
		}

		result.Set(key, value)
		changes = append(changes, Change{Key: key, Old: old, New: value, Added: !exists})
	}
	return result, changes
}

// Remove deletes every entry whose key is selected and returns the removed keys.
func Remove(doc *dfconfig.Document, selectors []keys.Selector) []string {
	var removed []string
	for _, key := range doc.Keys() {
		if keys.Any(selectors, key) {
			doc.RemoveAll(key)
			removed = append(removed, key)
		}
	}
	return removed
}
