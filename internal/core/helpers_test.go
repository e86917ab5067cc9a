package core

import (
	"errors"
	"path/filepath"
	"sync"

	"projgen/internal/manifest"
	"projgen/internal/types"
)

var errUnresolvable = errors.New("unresolvable")

// fakePaths joins every path onto dir and fails for pathnames in fail.
type fakePaths struct {
	dir  string
	fail map[string]bool
}

func (p fakePaths) Resolve(path manifest.Path) (string, error) {
	if p.fail[path.Pathname] {
		return "", &types.PathResolutionError{Path: path.String(), Cause: errUnresolvable}
	}
	return filepath.Join(p.dir, path.Pathname), nil
}

// fakeCodec encodes the dictionary keys and rejects any dictionary with a
// "fail" key.
type fakeCodec struct {
	mu      sync.Mutex
	encoded int
}

func (c *fakeCodec) Encode(content types.PlistDictionary) ([]byte, error) {
	c.mu.Lock()
	c.encoded++
	c.mu.Unlock()
	if _, ok := content.Get("fail"); ok {
		return nil, errors.New("cannot encode")
	}
	var data []byte
	for _, key := range content.Keys() {
		data = append(data, key...)
		data = append(data, ';')
	}
	return data, nil
}

func (c *fakeCodec) Decode([]byte) (types.PlistDictionary, error) {
	return nil, errors.New("not implemented")
}

type fakeCoreData struct {
	versions map[string][]string
	current  map[string]string
	err      error
}

func (f fakeCoreData) Versions(modelPath string) ([]string, error) {
	return f.versions[modelPath], nil
}

func (f fakeCoreData) CurrentVersion(modelPath string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	version, ok := f.current[modelPath]
	return version, ok, nil
}
