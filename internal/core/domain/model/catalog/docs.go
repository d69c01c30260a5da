// Package catalog holds the garment models clients order from. Orders refer to
// models by id only; a model removed from the catalog leaves its orders intact.
package catalog
