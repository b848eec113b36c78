package catalog

import (
	"encoding/json"
)

const (
	fieldName  = "name"
	fieldImage = "image"
)

// Product is one catalog record. Only the image field is ever mutated; every
// other key is carried as raw JSON.
type Product struct {
	index int
	name  string
	image string
	obj   object
}

func (p *Product) Index() int    { return p.index }
func (p *Product) Name() string  { return p.name }
func (p *Product) Image() string { return p.image }

// SetImage replaces the product's image reference.
func (p *Product) SetImage(image string) {
	raw, err := encodeString(image)
	if err != nil {
		// Encoding a Go string cannot fail.
		panic(err)
	}
	p.image = image
	p.obj.set(fieldImage, raw)
}

// Field returns the raw JSON value stored under key.
func (p *Product) Field(key string) (json.RawMessage, bool) {
	return p.obj.get(key)
}

// Keys returns the product's keys in document order.
func (p *Product) Keys() []string {
	return p.obj.keys()
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return p.obj.MarshalJSON()
}

func decodeProduct(index int, raw json.RawMessage) (*Product, error) {
	p := &Product{index: index}
	if err := json.Unmarshal(raw, &p.obj); err != nil {
		return nil, &FieldError{Index: index, Field: "product", Reason: "is not an object"}
	}
	var err error
	if p.name, err = stringField(&p.obj, index, fieldName); err != nil {
		return nil, err
	}
	if p.image, err = stringField(&p.obj, index, fieldImage); err != nil {
		return nil, err
	}
	return p, nil
}

func stringField(obj *object, index int, key string) (string, error) {
	raw, ok := obj.get(key)
	if !ok {
		return "", &FieldError{Index: index, Field: key, Reason: "is missing"}
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil || isNull(raw) {
		return "", &FieldError{Index: index, Field: key, Reason: "is not a string"}
	}
	return value, nil
}
