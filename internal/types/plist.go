package types

// PlistKind identifies the variant of a PlistValue.
type PlistKind int

const (
	PlistKindString PlistKind = iota
	PlistKindBoolean
	PlistKindInteger
	PlistKindReal
	PlistKindArray
	PlistKindDictionary
)

// PlistValue is the graph representation of a structured configuration
// value. The set of implementations is closed: PlistString, PlistBoolean,
// PlistInteger, PlistReal, PlistArray and PlistDictionary.
type PlistValue interface {
	Kind() PlistKind
	// Native returns the value as plain Go data (string, bool, int64,
	// float64, []any, map[string]any) for serialization.
	Native() any
	isPlistValue()
}

type PlistString string

type PlistBoolean bool

type PlistInteger int64

type PlistReal float64

type PlistArray []PlistValue

// PlistEntry is a single key/value pair of a PlistDictionary.
type PlistEntry struct {
	Key   string
	Value PlistValue
}

// PlistDictionary keeps insertion order so serialized output is stable.
// Keys are unique.
type PlistDictionary []PlistEntry

func (PlistString) Kind() PlistKind     { return PlistKindString }
func (PlistBoolean) Kind() PlistKind    { return PlistKindBoolean }
func (PlistInteger) Kind() PlistKind    { return PlistKindInteger }
func (PlistReal) Kind() PlistKind       { return PlistKindReal }
func (PlistArray) Kind() PlistKind      { return PlistKindArray }
func (PlistDictionary) Kind() PlistKind { return PlistKindDictionary }

func (PlistString) isPlistValue()     {}
func (PlistBoolean) isPlistValue()    {}
func (PlistInteger) isPlistValue()    {}
func (PlistReal) isPlistValue()       {}
func (PlistArray) isPlistValue()      {}
func (PlistDictionary) isPlistValue() {}

func (v PlistString) Native() any  { return string(v) }
func (v PlistBoolean) Native() any { return bool(v) }
func (v PlistInteger) Native() any { return int64(v) }
func (v PlistReal) Native() any    { return float64(v) }

func (v PlistArray) Native() any {
	out := make([]any, 0, len(v))
	for _, item := range v {
		out = append(out, item.Native())
	}
	return out
}

func (v PlistDictionary) Native() any {
	out := make(map[string]any, len(v))
	for _, entry := range v {
		out[entry.Key] = entry.Value.Native()
	}
	return out
}

// Get returns the value stored under key.
func (v PlistDictionary) Get(key string) (PlistValue, bool) {
	for _, entry := range v {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Keys returns the dictionary keys in insertion order.
func (v PlistDictionary) Keys() []string {
	keys := make([]string, 0, len(v))
	for _, entry := range v {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Set returns a copy of the dictionary with key set to value. An existing
// key keeps its position.
func (v PlistDictionary) Set(key string, value PlistValue) PlistDictionary {
	out := make(PlistDictionary, 0, len(v)+1)
	replaced := false
	for _, entry := range v {
		if entry.Key == key {
			out = append(out, PlistEntry{Key: key, Value: value})
			replaced = true
			continue
		}
		out = append(out, entry)
	}
	if !replaced {
		out = append(out, PlistEntry{Key: key, Value: value})
	}
	return out
}

// PlistEqual reports structural equality. Dictionary key order is ignored.
func PlistEqual(a, b PlistValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case PlistString, PlistBoolean, PlistInteger, PlistReal:
		return a == b
	case PlistArray:
		right := b.(PlistArray)
		if len(left) != len(right) {
			return false
		}
		for i := range left {
			if !PlistEqual(left[i], right[i]) {
				return false
			}
		}
		return true
	case PlistDictionary:
		right := b.(PlistDictionary)
		if len(left) != len(right) {
			return false
		}
		for _, entry := range left {
			other, ok := right.Get(entry.Key)
			if !ok || !PlistEqual(entry.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
