package types

import (
	"fmt"
	"strings"
)

// PathResolutionError reports a manifest path that could not be turned
// into an absolute path.
type PathResolutionError struct {
	Path    string
	Project string
	Target  string
	Cause   error
}

func (e *PathResolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unable to resolve path %q", e.Path)
	writeLocation(&b, e.Project, e.Target)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *PathResolutionError) Unwrap() error {
	return e.Cause
}

// InTarget returns a copy of the error annotated with its location.
func (e *PathResolutionError) InTarget(project, target string) *PathResolutionError {
	annotated := *e
	if annotated.Project == "" {
		annotated.Project = project
	}
	if annotated.Target == "" {
		annotated.Target = target
	}
	return &annotated
}

// SerializationError reports a value tree that the plist codec rejected.
type SerializationError struct {
	Project string
	Target  string
	Cause   error
}

func (e *SerializationError) Error() string {
	var b strings.Builder
	b.WriteString("unable to serialize property list")
	writeLocation(&b, e.Project, e.Target)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

func writeLocation(b *strings.Builder, project, target string) {
	switch {
	case project != "" && target != "":
		fmt.Fprintf(b, " (project %s, target %s)", project, target)
	case project != "":
		fmt.Fprintf(b, " (project %s)", project)
	case target != "":
		fmt.Fprintf(b, " (target %s)", target)
	}
}
