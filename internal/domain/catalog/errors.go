package catalog

import "errors"

// ErrNotFound is returned when a catalog record cannot be resolved by ID.
// Repositories translate their store-specific miss into this sentinel so
// handlers can map it to an HTTP 404 with errors.Is.
var ErrNotFound = errors.New("catalog: record not found")
