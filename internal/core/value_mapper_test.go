package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"projgen/internal/manifest"
	"projgen/internal/types"
)

func sampleManifestDictionary() manifest.PlistDictionary {
	return manifest.PlistDictionary{
		{Key: "z", Value: manifest.PlistString("last first")},
		{Key: "flag", Value: manifest.PlistBoolean(true)},
		{Key: "min", Value: manifest.PlistInteger(math.MinInt64)},
		{Key: "ratio", Value: manifest.PlistReal(-0.5)},
		{Key: "items", Value: manifest.PlistArray{
			manifest.PlistInteger(3),
			manifest.PlistArray{},
			manifest.PlistDictionary{{Key: "b", Value: manifest.PlistString("")}, {Key: "a", Value: manifest.PlistBoolean(false)}},
		}},
		{Key: "empty", Value: manifest.PlistDictionary{}},
	}
}

func TestMapPlistDictionaryPreservesStructure(t *testing.T) {
	got := MapPlistDictionary(sampleManifestDictionary())
	want := types.PlistDictionary{
		{Key: "z", Value: types.PlistString("last first")},
		{Key: "flag", Value: types.PlistBoolean(true)},
		{Key: "min", Value: types.PlistInteger(math.MinInt64)},
		{Key: "ratio", Value: types.PlistReal(-0.5)},
		{Key: "items", Value: types.PlistArray{
			types.PlistInteger(3),
			types.PlistArray{},
			types.PlistDictionary{{Key: "b", Value: types.PlistString("")}, {Key: "a", Value: types.PlistBoolean(false)}},
		}},
		{Key: "empty", Value: types.PlistDictionary{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected mapping (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"z", "flag", "min", "ratio", "items", "empty"}, got.Keys())
}

func TestMapPlistValueIsDeterministic(t *testing.T) {
	input := sampleManifestDictionary()
	first := MapPlistValue(input)
	for range 10 {
		if diff := cmp.Diff(first, MapPlistValue(input)); diff != "" {
			t.Fatalf("mapping changed between calls (-first +again):\n%s", diff)
		}
	}
}

func TestMapPlistValueRoundTrip(t *testing.T) {
	input := sampleManifestDictionary()
	if diff := cmp.Diff(input, ManifestPlistDictionary(MapPlistDictionary(input))); diff != "" {
		t.Fatalf("round trip changed the value (-want +got):\n%s", diff)
	}

	scalars := []manifest.PlistValue{
		manifest.PlistString("s"),
		manifest.PlistBoolean(false),
		manifest.PlistInteger(0),
		manifest.PlistReal(1e300),
	}
	for _, scalar := range scalars {
		assert.Equal(t, scalar, ManifestPlistValue(MapPlistValue(scalar)))
	}
}

func TestPlistEqualIgnoresDictionaryOrder(t *testing.T) {
	a := types.PlistDictionary{{Key: "a", Value: types.PlistInteger(1)}, {Key: "b", Value: types.PlistArray{types.PlistString("x")}}}
	b := types.PlistDictionary{{Key: "b", Value: types.PlistArray{types.PlistString("x")}}, {Key: "a", Value: types.PlistInteger(1)}}
	assert.True(t, types.PlistEqual(a, b))

	reordered := types.PlistArray{types.PlistInteger(2), types.PlistInteger(1)}
	assert.False(t, types.PlistEqual(types.PlistArray{types.PlistInteger(1), types.PlistInteger(2)}, reordered))
	assert.False(t, types.PlistEqual(types.PlistInteger(1), types.PlistReal(1)))
}
