// Package model defines the entity types, constraint structures, metadata
// keys, and standard error types for the linksmith scene store. The Store and
// Table interfaces decouple callers from the storage backend.
package model
