package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Product is a minimal catalog entry used to build fixtures.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price,omitempty"`
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCatalog writes a catalog document holding products under the
// "products" key to a fresh temp directory and returns its path.
func WriteCatalog(t testing.TB, products ...Product) string {
	t.Helper()

	data, err := json.MarshalIndent(map[string]any{"products": products}, "", "  ")
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	path := filepath.Join(t.TempDir(), "db.json")
	WriteFile(t, path, string(data))
	return path
}

// RemoteProducts returns n products that all point at https images.
func RemoteProducts(n int) []Product {
	products := make([]Product, n)
	for i := range products {
		products[i] = Product{
			ID:    i + 1,
			Name:  "Product " + string(rune('A'+i%26)),
			Image: "https://example.com/images/item.jpg",
		}
	}
	return products
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
