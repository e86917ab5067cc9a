package ports

// CoreDataVersionPort inspects .xcdatamodeld bundles on disk.
type CoreDataVersionPort interface {
	// Versions lists the .xcdatamodel versions inside the bundle.
	Versions(modelPath string) ([]string, error)

	// CurrentVersion reads the bundle's .xccurrentversion file. found is
	// false when the file does not exist.
	CurrentVersion(modelPath string) (version string, found bool, err error)
}
