// Package format converts the key/value set of a config to and from other file formats.
package format

import "github.com/iancoleman/orderedmap"

// Handler defines the interface for key/value format handlers.
//
// Values are exchanged as an *orderedmap.OrderedMap of string keys to
// string values, in document order.
type Handler interface {
	// Name returns the format name used on the command line.
	Name() string

	// Decode reads raw bytes into ordered key/value pairs.
	Decode(data []byte) (*orderedmap.OrderedMap, error)

	// Encode writes ordered key/value pairs to bytes.
	Encode(values *orderedmap.OrderedMap) ([]byte, error)
}
