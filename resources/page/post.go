// Package page holds the Post model and its collections.
package page

import (
	"html/template"
	"time"

	"github.com/taxoblog/taxoblog/common/maps"
	"github.com/taxoblog/taxoblog/source"
)

// Post represents a single blog entry.
//
// The Permalink is the post's identity: it is unique per post and is what
// taxonomy listings link to and de-duplicate on.
type Post struct {
	// Title as shown in listings. May be empty; listings render whatever
	// value is present.
	Title string

	// Permalink is the site-relative URL of the post, e.g. "/swiftui/my-post/".
	Permalink string

	// TargetPath is the publishDir-relative output path, e.g.
	// "swiftui/my-post/index.html". Unlike Permalink it never carries the
	// baseURL path prefix.
	TargetPath string

	// Date is the publication date from front matter. Posts without a date
	// keep the zero value and sort last.
	Date time.Time

	// Weight is a manual ordering override; the zero value means unweighted.
	Weight int

	// Tags and Categories are the two taxonomy dimensions. The slices keep
	// the front matter order, duplicates included; de-duplication happens
	// when the taxonomies are assembled.
	Tags       []string
	Categories []string

	// Draft posts are excluded from all collections.
	Draft bool

	// Content is the post body converted to HTML.
	Content template.HTML

	// Params contains the post's full front matter, lower-cased.
	Params maps.Params

	// File points back to the source file. Nil for synthetic posts.
	File *source.File
}

// Posts is a slice of Post pointers, the most common list type around here.
type Posts []*Post

// Len returns the number of posts in the list.
func (p Posts) Len() int {
	return len(p)
}

// Copy returns a shallow copy of the list.
func (p Posts) Copy() Posts {
	cp := make(Posts, len(p))
	copy(cp, p)
	return cp
}
