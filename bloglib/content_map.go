package bloglib

import (
	"path/filepath"
	"strings"

	radix "github.com/armon/go-radix"
	"github.com/taxoblog/taxoblog/resources/page"
)

// postMap stores the site's posts keyed by their content-relative path,
// e.g. "swiftui/building-task-lists.md" => "/swiftui/building-task-lists".
// The radix tree keeps the keys sorted, which gives the collection a
// stable walk order independent of file discovery order.
type postMap struct {
	posts *radix.Tree
}

func newPostMap() *postMap {
	return &postMap{posts: radix.New()}
}

// cleanTreeKey normalizes a content path into a tree key:
// Unix slashes, a leading slash and no file extension.
func cleanTreeKey(k string) string {
	k = filepath.ToSlash(k)
	k = strings.TrimSuffix(k, filepath.Ext(k))
	k = strings.Trim(k, "/")
	return "/" + strings.ToLower(k)
}

func (m *postMap) insert(key string, p *page.Post) {
	m.posts.Insert(cleanTreeKey(key), p)
}

func (m *postMap) get(key string) *page.Post {
	v, found := m.posts.Get(cleanTreeKey(key))
	if !found {
		return nil
	}
	return v.(*page.Post)
}

func (m *postMap) len() int {
	return m.posts.Len()
}

// walk visits the posts in key order.
func (m *postMap) walk(fn func(key string, p *page.Post) bool) {
	m.posts.Walk(func(k string, v any) bool {
		return fn(k, v.(*page.Post))
	})
}

// assemble collects the posts in key order.
func (m *postMap) assemble() page.Posts {
	posts := make(page.Posts, 0, m.len())
	m.walk(func(k string, p *page.Post) bool {
		posts = append(posts, p)
		return false
	})
	return posts
}
