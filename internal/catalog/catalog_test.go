package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catalogimg/internal/catalog"
	"catalogimg/internal/testsupport"
)

const sampleCatalog = `{
  "users": [{"id": 1, "email": "a@example.com"}],
  "products": [
    {"id": 1, "name": "Red Apple", "price": 1.25, "image": "https://example.com/a.jpg", "tags": ["fruit", "red"]},
    {"name": "Blue Pen", "image": "local.svg", "stock": null}
  ],
  "orders": []
}`

func TestDecodePreservesKeyOrder(t *testing.T) {
	doc, err := catalog.Decode([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := strings.Join(doc.Keys(), ","); got != "users,products,orders" {
		t.Fatalf("unexpected top-level keys: %s", got)
	}
	products := doc.Products()
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if got := strings.Join(products[0].Keys(), ","); got != "id,name,price,image,tags" {
		t.Fatalf("unexpected product keys: %s", got)
	}
	if products[0].Name() != "Red Apple" || products[0].Image() != "https://example.com/a.jpg" {
		t.Fatalf("unexpected product: %q %q", products[0].Name(), products[0].Image())
	}
	if products[1].Index() != 1 {
		t.Fatalf("unexpected index %d", products[1].Index())
	}
}

func TestEncodeRoundTripIsStable(t *testing.T) {
	doc, err := catalog.Decode([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	first, err := catalog.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	doc2, err := catalog.Decode(first)
	if err != nil {
		t.Fatalf("Decode encoded: %v", err)
	}
	second, err := catalog.Encode(doc2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("round trip not stable:\n%s\n---\n%s", first, second)
	}
	if strings.HasSuffix(string(first), "\n") {
		t.Fatal("expected no trailing newline")
	}
	if !strings.Contains(string(first), "\n  \"users\": [\n    {\n      \"id\": 1,") {
		t.Fatalf("expected two-space indentation, got:\n%s", first)
	}
	if !strings.Contains(string(first), `"price": 1.25`) {
		t.Fatalf("expected raw number preserved, got:\n%s", first)
	}
	if !strings.Contains(string(first), `"orders": []`) {
		t.Fatalf("expected empty array preserved, got:\n%s", first)
	}
}

func TestSetImageOnlyTouchesImage(t *testing.T) {
	doc, err := catalog.Decode([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	p := doc.Products()[0]
	before, _ := p.Field("tags")
	p.SetImage("data:image/svg+xml,%3Csvg%3E&x")

	if p.Image() != "data:image/svg+xml,%3Csvg%3E&x" {
		t.Fatalf("unexpected image %q", p.Image())
	}
	after, _ := p.Field("tags")
	if string(before) != string(after) {
		t.Fatalf("tags changed: %s -> %s", before, after)
	}
	if got := strings.Join(p.Keys(), ","); got != "id,name,price,image,tags" {
		t.Fatalf("key order changed: %s", got)
	}

	out, err := catalog.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(out), `"image": "data:image/svg+xml,%3Csvg%3E&x"`) {
		t.Fatalf("expected unescaped image in output:\n%s", out)
	}
}

func TestDecodeSchemaErrors(t *testing.T) {
	tests := map[string]string{
		"invalid json":     `{"products": [`,
		"top level array":  `[{"name": "a", "image": "b"}]`,
		"missing products": `{"items": []}`,
		"products object":  `{"products": {"name": "a"}}`,
		"products null":    `{"products": null}`,
		"empty input":      ``,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Decode([]byte(input))
			if !errors.Is(err, catalog.ErrSchema) {
				t.Fatalf("expected schema error, got %v", err)
			}
		})
	}
}

func TestDecodeFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
		field string
	}{
		{"missing name", `{"products": [{"name": "a", "image": "b"}, {"image": "c"}]}`, 1, "name"},
		{"missing image", `{"products": [{"name": "a"}]}`, 0, "image"},
		{"numeric image", `{"products": [{"name": "a", "image": 7}]}`, 0, "image"},
		{"null name", `{"products": [{"name": null, "image": "x"}]}`, 0, "name"},
		{"not an object", `{"products": ["a"]}`, 0, "product"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode([]byte(tt.input))
			if !errors.Is(err, catalog.ErrField) {
				t.Fatalf("expected field error, got %v", err)
			}
			var fieldErr *catalog.FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fieldErr.Index != tt.index || fieldErr.Field != tt.field {
				t.Fatalf("unexpected field error: %+v", fieldErr)
			}
		})
	}
}

func TestDecodeEmptyProducts(t *testing.T) {
	doc, err := catalog.Decode([]byte(`{"products": []}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.Products()) != 0 {
		t.Fatalf("expected no products")
	}
	out, err := catalog.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(out) != "{\n  \"products\": []\n}" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, catalog.ErrFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadSchemaErrorIncludesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	testsupport.WriteFile(t, path, "not json")
	_, err := catalog.Load(path)
	if !errors.Is(err, catalog.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error %q", err)
	}
}

func TestSaveKeepsFileMode(t *testing.T) {
	path := testsupport.WriteCatalog(t, testsupport.Product{ID: 1, Name: "A", Image: "a.png"})
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}
	doc, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc.Products()[0].SetImage("b.png")
	if err := catalog.Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %o", info.Mode().Perm())
	}
	reloaded, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Products()[0].Image() != "b.png" {
		t.Fatalf("unexpected image after save: %q", reloaded.Products()[0].Image())
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	doc, err := catalog.Decode([]byte(`{"products": []}`))
	if err != nil {
		t.Fatal(err)
	}
	err = catalog.Save(filepath.Join(t.TempDir(), "missing", "db.json"), doc)
	if !errors.Is(err, catalog.ErrFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}
}

func TestAcquireIsExclusive(t *testing.T) {
	path := testsupport.WriteCatalog(t, testsupport.Product{ID: 1, Name: "A", Image: "a.png"})

	first, err := catalog.Acquire(path)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	if _, err := catalog.Acquire(path); !errors.Is(err, catalog.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	again, err := catalog.Acquire(path)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if err := again.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	var nilLock *catalog.Lock
	if err := nilLock.Release(); err != nil {
		t.Fatalf("nil Release: %v", err)
	}
}

func TestAcquireMissingCatalogCreatesNoLockFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.json")

	if _, err := catalog.Acquire(path); !errors.Is(err, catalog.ErrFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}
	if _, err := os.Stat(catalog.LockPath(path)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no lock file, got %v", err)
	}
}
