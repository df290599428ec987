package bloglib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/resources/page"
)

func TestCleanTreeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"swiftui/building-task-lists.md", "/swiftui/building-task-lists"},
		{"/Top-Level.md", "/top-level"},
		{"about.md", "/about"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanTreeKey(tt.in), "cleanTreeKey(%q)", tt.in)
	}
}

func TestPostMap_InsertAndGet(t *testing.T) {
	m := newPostMap()
	p := &page.Post{Title: "A"}

	m.insert("posts/a.md", p)

	assert.Equal(t, 1, m.len())
	assert.Same(t, p, m.get("posts/a.md"))
	assert.Same(t, p, m.get("Posts/A.md"))
	assert.Nil(t, m.get("posts/missing.md"))
}

func TestPostMap_AssembleIsKeyOrdered(t *testing.T) {
	m := newPostMap()
	m.insert("b/post.md", &page.Post{Title: "B"})
	m.insert("a/post.md", &page.Post{Title: "A"})
	m.insert("c/post.md", &page.Post{Title: "C"})

	posts := m.assemble()

	require.Len(t, posts, 3)
	assert.Equal(t, "A", posts[0].Title)
	assert.Equal(t, "B", posts[1].Title)
	assert.Equal(t, "C", posts[2].Title)
}

func TestPostMap_InsertOverwritesSameKey(t *testing.T) {
	m := newPostMap()
	m.insert("a.md", &page.Post{Title: "First"})
	m.insert("a.md", &page.Post{Title: "Second"})

	assert.Equal(t, 1, m.len())
	assert.Equal(t, "Second", m.get("a.md").Title)
}
