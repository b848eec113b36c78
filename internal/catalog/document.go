package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProductsKey names the top-level member holding the product list.
const ProductsKey = "products"

// Document is a decoded catalog. Top-level members other than products are
// preserved verbatim.
type Document struct {
	root     object
	products []*Product
}

// Products returns the ordered product list. Mutations through the returned
// values are reflected when the document is encoded.
func (d *Document) Products() []*Product {
	return d.products
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return d.root.keys()
}

// Decode parses a catalog document and validates every product.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, &doc.root); err != nil {
		return nil, fmt.Errorf("%w: decode document: %w", ErrSchema, err)
	}
	raw, ok := doc.root.get(ProductsKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrSchema, ProductsKey)
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: %q must be an array", ErrSchema, ProductsKey)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %q must be an array", ErrSchema, ProductsKey)
	}
	doc.products = make([]*Product, 0, len(items))
	for i, item := range items {
		product, err := decodeProduct(i, item)
		if err != nil {
			return nil, err
		}
		doc.products = append(doc.products, product)
	}
	return doc, nil
}

// Encode serializes the document with two-space indentation. The output has no
// trailing newline.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	var products bytes.Buffer
	products.WriteByte('[')
	for i, p := range d.products {
		if i > 0 {
			products.WriteByte(',')
		}
		raw, err := p.MarshalJSON()
		if err != nil {
			return nil, err
		}
		products.Write(raw)
	}
	products.WriteByte(']')

	out := object{members: make([]member, len(d.root.members))}
	copy(out.members, d.root.members)
	out.set(ProductsKey, products.Bytes())
	return out.MarshalJSON()
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
