package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/internal/manifest"
	"projgen/internal/types"
)

func TestGeneratorPathsResolve(t *testing.T) {
	paths := NewGeneratorPaths("/work/App/", "/work")

	tests := []struct {
		name string
		in   manifest.Path
		want string
	}{
		{name: "relative to manifest", in: manifest.ParsePath("Resources/PrivacyInfo.xcprivacy"), want: "/work/App/Resources/PrivacyInfo.xcprivacy"},
		{name: "relative to root", in: manifest.ParsePath("//Shared/Info.plist"), want: "/work/Shared/Info.plist"},
		{name: "absolute", in: manifest.ParsePath("/etc/../opt/App.entitlements"), want: "/opt/App.entitlements"},
		{name: "parent directory", in: manifest.ParsePath("../Kit/Info.plist"), want: "/work/Kit/Info.plist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.Resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratorPathsResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		paths GeneratorPaths
		in    manifest.Path
		cause error
	}{
		{name: "empty", paths: NewGeneratorPaths("/work", "/work"), in: manifest.ParsePath("  "), cause: errEmptyPath},
		{name: "root prefix only", paths: NewGeneratorPaths("/work", "/work"), in: manifest.ParsePath("//"), cause: errEmptyPath},
		{name: "no root", paths: NewGeneratorPaths("/work", ""), in: manifest.ParsePath("//Info.plist"), cause: errRootUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.paths.Resolve(tt.in)
			var pathErr *types.PathResolutionError
			require.True(t, errors.As(err, &pathErr), "got %T: %v", err, err)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestFindRootDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	nested := filepath.Join(root, "Projects", "App")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, root, FindRootDirectory(nested))
	assert.Equal(t, root, FindRootDirectory(root))
}

func TestFindRootDirectoryConfigMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "projgen.yaml"), []byte("workers: 1\n"), 0644))
	nested := filepath.Join(root, "Modules", "Feature")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, root, FindRootDirectory(nested))
}

func TestFindRootDirectoryWithoutMarker(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "App")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root := FindRootDirectory(nested)
	assert.Empty(t, root)

	_, err := NewGeneratorPaths(nested, root).Resolve(manifest.ParsePath("//Info.plist"))
	var pathErr *types.PathResolutionError
	require.True(t, errors.As(err, &pathErr), "got %T: %v", err, err)
	assert.Equal(t, "//Info.plist", pathErr.Path)
}
