package tnetstr

// Pair is one key/value entry of a dict. Keys are full values on the wire:
// they are not required to be strings, unique, or sorted.
type Pair[V any] struct {
	Key V
	Val V
}

// Model is the capability set the engine needs from a host value
// representation. The engine is generic over it and never inspects a concrete
// value itself; implementing Model once is all a new type system needs to
// reuse the engine unchanged. See the native package for the Go-native one.
//
// Parse* construct a value from a raw payload; Render* produce the payload
// bytes back. ListItems and DictPairs must return elements in encounter
// order. Append and Put return the (possibly reallocated) container.
type Model[V any] interface {
	// Classify reports the wire tag v encodes as, or ErrNotSerializable
	// (typically wrapped with type context) for values outside the seven
	// wire types.
	Classify(v V) (Tag, error)

	ParseString(payload []byte) (V, error)
	ParseInteger(payload []byte) (V, error)
	ParseFloat(payload []byte) (V, error)
	Bool(b bool) V
	Null() V

	NewList() V
	Append(list, item V) (V, error)
	NewDict() V
	Put(dict, key, val V) (V, error)

	RenderString(v V) ([]byte, error)
	// RenderNumber produces decimal text: plain digits with an optional
	// leading '-' for integers, shortest round-trip form for floats.
	RenderNumber(v V) ([]byte, error)
	RenderBool(v V) ([]byte, error)
	ListItems(v V) ([]V, error)
	DictPairs(v V) ([]Pair[V], error)
}
