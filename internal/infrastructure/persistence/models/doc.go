// Package models contains the GORM database models of the catalog and
// their conversions to and from the domain entities. Schema concerns
// (column types, indexes, join tables) live here and nowhere else.
package models
