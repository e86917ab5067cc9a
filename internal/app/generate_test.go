package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/internal/adapters"
	"projgen/internal/types"
	"projgen/tests/testutil"
)

type recordingExecutor struct {
	calls [][]types.SideEffectDescriptor
}

func (e *recordingExecutor) Execute(_ context.Context, effects []types.SideEffectDescriptor) error {
	e.calls = append(e.calls, effects)
	return nil
}

func TestGenerateWritesPrivacyManifest(t *testing.T) {
	dir := testutil.CopyFixture(t, "App")
	service := NewService()

	result, err := service.Generate(t.Context(), GenerateRequest{Path: dir})
	require.NoError(t, err)
	require.Len(t, result.Projects, 1)

	project := result.Projects[0]
	assert.Equal(t, "App", project.Name)
	assert.Equal(t, filepath.Join(dir, "Project.yaml"), project.ManifestPath)

	wantPath := filepath.Join(dir, "Derived", "PrivacyManifest", "App", "PrivacyInfo.xcprivacy")
	require.Len(t, project.SideEffects, 1)
	assert.Equal(t, wantPath, project.SideEffects[0].EffectPath())

	data, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	decoded, err := adapters.NewPlistCodecAdapter().Decode(data)
	require.NoError(t, err)
	tracking, ok := decoded.Get("NSPrivacyTracking")
	require.True(t, ok)
	assert.Equal(t, types.PlistBoolean(false), tracking)

	assert.NoDirExists(t, filepath.Join(dir, "Derived", "PrivacyManifest", "AppKit"))
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	dir := testutil.CopyFixture(t, "App")
	executor := &recordingExecutor{}
	service := NewService()
	service.Executor = executor

	result, err := service.Generate(t.Context(), GenerateRequest{Path: dir, DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	require.Len(t, result.Projects, 1)
	assert.Len(t, result.Projects[0].SideEffects, 1)
	assert.Empty(t, executor.calls)
	assert.NoDirExists(t, filepath.Join(dir, "Derived"))
}

func TestGenerateCleanRemovesStaleManifests(t *testing.T) {
	dir := testutil.CopyFixture(t, "App")
	stale := filepath.Join(dir, "Derived", "PrivacyManifest", "Removed", "PrivacyInfo.xcprivacy")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	result, err := NewService().Generate(t.Context(), GenerateRequest{Path: dir, Clean: true})
	require.NoError(t, err)
	require.Len(t, result.Projects[0].SideEffects, 2)
	assert.Equal(t, types.DirectoryDescriptor{
		Path:  filepath.Join(dir, "Derived", "PrivacyManifest"),
		State: types.DescriptorStateAbsent,
	}, result.Projects[0].SideEffects[0])

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dir, "Derived", "PrivacyManifest", "App", "PrivacyInfo.xcprivacy"))
}

func TestGenerateCustomDirectories(t *testing.T) {
	dir := testutil.CopyFixture(t, "App")
	executor := &recordingExecutor{}
	service := NewService()
	service.Executor = executor

	_, err := service.Generate(t.Context(), GenerateRequest{
		Path: dir,
		Options: MapperOptions{
			DerivedDirectory:         "Generated",
			PrivacyManifestDirectory: "Privacy",
			Workers:                  3,
		},
	})
	require.NoError(t, err)
	require.Len(t, executor.calls, 1)
	require.Len(t, executor.calls[0], 1)
	assert.Equal(t, filepath.Join(dir, "Generated", "Privacy", "App", "PrivacyInfo.xcprivacy"), executor.calls[0][0].EffectPath())
}

func TestGenerateWorkspaceMapsAllBeforeWriting(t *testing.T) {
	dir := testutil.CopyFixture(t, "Workspace")
	broken := filepath.Join(dir, "Modules", "Zzz")
	require.NoError(t, os.MkdirAll(broken, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "Project.yaml"), []byte(`
name: Zzz
targets:
  - name: Zzz
    product: app
    info_plist: ""
`), 0o644))

	executor := &recordingExecutor{}
	service := NewService()
	service.Executor = executor

	_, err := service.Generate(t.Context(), GenerateRequest{Path: dir})
	var pathErr *types.PathResolutionError
	require.True(t, errors.As(err, &pathErr), "got %T: %v", err, err)
	assert.Equal(t, "Zzz", pathErr.Project)
	assert.Empty(t, executor.calls)
}

func TestGenerateWorkspaceResolvesRootPaths(t *testing.T) {
	dir := testutil.CopyFixture(t, "Workspace")

	result, err := NewService().Generate(t.Context(), GenerateRequest{Path: dir})
	require.NoError(t, err)
	require.Len(t, result.Projects, 2)

	feature := filepath.Join(dir, "Modules", "Feature", "Derived", "PrivacyManifest", "Feature", "PrivacyInfo.xcprivacy")
	assert.FileExists(t, feature)
}

func TestGenerateRootPathWithoutRootMarker(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "App")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Project.yaml"), []byte(`
name: App
targets:
  - name: App
    product: app
    resources:
      - //Shared/Info.plist
`), 0o644))

	executor := &recordingExecutor{}
	service := NewService()
	service.Executor = executor

	_, err := service.Generate(t.Context(), GenerateRequest{Path: dir})
	var pathErr *types.PathResolutionError
	require.True(t, errors.As(err, &pathErr), "got %T: %v", err, err)
	assert.Equal(t, "//Shared/Info.plist", pathErr.Path)
	assert.Equal(t, "App", pathErr.Project)
	assert.Equal(t, "App", pathErr.Target)
	assert.Empty(t, executor.calls)
}
