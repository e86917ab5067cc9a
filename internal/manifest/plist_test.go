package manifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPlistDictionaryKeepsKeyOrder(t *testing.T) {
	var dictionary PlistDictionary
	err := yaml.Unmarshal([]byte(`
zeta: text
alpha: true
mid: 42
real: 1.5
list: [1, "two", false]
nested:
  b: 1
  a: 2
`), &dictionary)
	require.NoError(t, err)

	want := PlistDictionary{
		{Key: "zeta", Value: PlistString("text")},
		{Key: "alpha", Value: PlistBoolean(true)},
		{Key: "mid", Value: PlistInteger(42)},
		{Key: "real", Value: PlistReal(1.5)},
		{Key: "list", Value: PlistArray{PlistInteger(1), PlistString("two"), PlistBoolean(false)}},
		{Key: "nested", Value: PlistDictionary{
			{Key: "b", Value: PlistInteger(1)},
			{Key: "a", Value: PlistInteger(2)},
		}},
	}
	if diff := cmp.Diff(want, dictionary); diff != "" {
		t.Fatalf("unexpected dictionary (-want +got):\n%s", diff)
	}
}

func TestPlistDictionaryResolvesAliases(t *testing.T) {
	var doc struct {
		Base  PlistDictionary `yaml:"base"`
		Reuse PlistDictionary `yaml:"reuse"`
	}
	err := yaml.Unmarshal([]byte(`
base: &base
  key: value
reuse: *base
`), &doc)
	require.NoError(t, err)
	assert.Equal(t, doc.Base, doc.Reuse)
}

func TestPlistDictionaryInvalidType(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "null value", yaml: "key: null"},
		{name: "timestamp value", yaml: "key: 2024-01-01"},
		{name: "binary value", yaml: "key: !!binary aGVsbG8="},
		{name: "mapping key", yaml: "? {a: 1}\n: value"},
		{name: "duplicate key", yaml: "key: 1\nkey: 2"},
		{name: "not a mapping", yaml: "- 1\n- 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dictionary PlistDictionary
			err := yaml.Unmarshal([]byte(tt.yaml), &dictionary)
			require.Error(t, err)
			var codingErr *CodingError
			require.True(t, errors.As(err, &codingErr), "got %T: %v", err, err)
			assert.Equal(t, CodingErrorInvalidType, codingErr.Reason)
		})
	}
}
