// Package catalog contains the core entities of the library catalog:
// books, authors, genres and the loanable copies of each book, together
// with the service and repository contracts the rest of the application
// is built against.
package catalog
