// Package posts holds the fixed post table served by the web interface.
package posts

import (
	"github.com/miniblog/miniblog/internal/models"
)

// table is initialized once and never mutated. Order is insertion order
// and stays stable for the process lifetime.
var table = []*models.Post{
	{
		ID:      1,
		Title:   "First Post",
		Content: "This is the first blog post",
		Author:  "John Doe",
	},
	{
		ID:      2,
		Title:   "Learning FastAPI",
		Content: "FastAPI is a modern Python web framework",
		Author:  "Jane Smith",
	},
	{
		ID:      3,
		Title:   "Python Tips",
		Content: "Some useful Python programming tips",
		Author:  "Mike Johnson",
	},
	{
		ID:      4,
		Title:   "Web Development",
		Content: "Building scalable web applications",
		Author:  "Sarah Williams",
	},
	{
		ID:      5,
		Title:   "API Design Best Practices",
		Content: "How to design clean and effective APIs",
		Author:  "Tom Brown",
	},
}

// List returns the full ordered post sequence. Callers must not modify
// the returned slice or the posts it points to.
func List() []*models.Post {
	return table
}
