// Package catalog loads and persists the JSON product catalog consumed by the
// placeholder rewriter.
//
// Documents are decoded into order-preserving objects so that keys the
// rewriter does not care about, at the top level and inside each product,
// survive a load/save round trip with their original order and raw values.
// Saves are atomic: the catalog is written to a temporary sibling and renamed
// over the original only once serialization has succeeded.
package catalog
