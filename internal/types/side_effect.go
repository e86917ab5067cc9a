package types

// SideEffectDescriptor describes a deferred action that mappers request
// and an executor performs later. The set of implementations is closed:
// FileDescriptor and DirectoryDescriptor.
type SideEffectDescriptor interface {
	EffectPath() string
	isSideEffectDescriptor()
}

// FileDescriptor writes Contents to Path (creating parent directories and
// overwriting) when State is present, and deletes Path when absent.
type FileDescriptor struct {
	Path     string
	Contents []byte
	State    DescriptorState
}

// DirectoryDescriptor creates or removes a directory tree.
type DirectoryDescriptor struct {
	Path  string
	State DescriptorState
}

// NewFileDescriptor describes a write of contents to path.
func NewFileDescriptor(path string, contents []byte) FileDescriptor {
	return FileDescriptor{Path: path, Contents: contents, State: DescriptorStatePresent}
}

func (d FileDescriptor) EffectPath() string      { return d.Path }
func (d DirectoryDescriptor) EffectPath() string { return d.Path }

func (FileDescriptor) isSideEffectDescriptor()      {}
func (DirectoryDescriptor) isSideEffectDescriptor() {}
