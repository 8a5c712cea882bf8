// Package models defines core data structures for miniblog
package models

// Post represents a single blog entry. Posts are read-only reference
// data: the table is built once at startup and never mutated.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}
