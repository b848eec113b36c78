package catalog

import (
	"fmt"
	"os"

	"catalogimg/internal/fileutil"
)

const defaultFileMode os.FileMode = 0o644

// Load reads and decodes the catalog stored at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(ErrFileAccess, path, "read catalog", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save encodes doc and atomically replaces the file at path, keeping the
// existing file's permissions.
func Save(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: encode catalog: %w", ErrSchema, path, err)
	}
	mode, err := fileutil.FileMode(path, defaultFileMode)
	if err != nil {
		return wrap(ErrFileAccess, path, "stat catalog", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, mode); err != nil {
		return wrap(ErrFileAccess, path, "write catalog", err)
	}
	return nil
}
