// Package persistence implements the domain repository contracts on top
// of GORM. Each repository translates between the database models and
// the domain entities and maps a store miss onto catalog.ErrNotFound.
package persistence
