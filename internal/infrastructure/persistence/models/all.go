package models

// All returns every database model, in dependency order, for schema
// migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&BookInstanceModel{},
	}
}
