package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentVersionPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
<key>_XCCurrentVersionName</key>
<string>83.xcdatamodel</string>
</dict>
</plist>
`

func newModelBundle(t *testing.T, versionFile string, versions ...string) string {
	t.Helper()
	model := filepath.Join(t.TempDir(), "model.xcdatamodeld")
	require.NoError(t, os.Mkdir(model, 0755))
	for _, version := range versions {
		require.NoError(t, os.Mkdir(filepath.Join(model, version), 0755))
	}
	if versionFile != "" {
		require.NoError(t, os.WriteFile(filepath.Join(model, ".xccurrentversion"), []byte(versionFile), 0644))
	}
	return model
}

func TestCoreDataVersionAdapterReadsCurrentVersion(t *testing.T) {
	model := newModelBundle(t, currentVersionPlist, "83.xcdatamodel", "1.xcdatamodel")
	adapter := NewCoreDataVersionAdapter(NewPlistCodecAdapter())

	version, found, err := adapter.CurrentVersion(model)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "83", version)

	versions, err := adapter.Versions(model)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "83"}, versions)
}

func TestCoreDataVersionAdapterUnreadableVersionFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown format", content: "Let's say that the format changed without notice."},
		{name: "missing key", content: `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>Other</key><string>1</string></dict></plist>`},
		{name: "wrong type", content: `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>_XCCurrentVersionName</key><integer>1</integer></dict></plist>`},
	}
	adapter := NewCoreDataVersionAdapter(NewPlistCodecAdapter())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newModelBundle(t, tt.content)
			_, _, err := adapter.CurrentVersion(model)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
		})
	}
}

func TestCoreDataVersionAdapterMissingBundle(t *testing.T) {
	adapter := NewCoreDataVersionAdapter(NewPlistCodecAdapter())
	model := filepath.Join(t.TempDir(), "model.xcdatamodeld")

	_, found, err := adapter.CurrentVersion(model)
	require.NoError(t, err)
	assert.False(t, found)

	versions, err := adapter.Versions(model)
	require.NoError(t, err)
	assert.Empty(t, versions)

	require.NoError(t, os.WriteFile(model, nil, 0644))
	_, found, err = adapter.CurrentVersion(model)
	require.NoError(t, err)
	assert.False(t, found)
	versions, err = adapter.Versions(model)
	require.NoError(t, err)
	assert.Empty(t, versions)
}
