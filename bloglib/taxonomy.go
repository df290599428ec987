package bloglib

import (
	"sort"

	"github.com/taxoblog/taxoblog/resources/page"
)

// A Taxonomy is a map of terms to the posts carrying that term.
// For example
//    TagTaxonomy["swiftui"] = page.Posts
//    TagTaxonomy["eventkit"] = page.Posts
type Taxonomy map[string]page.Posts

// A TaxonomyList holds the site's taxonomies keyed by their dimension,
// i.e. "tags" and "categories".
type TaxonomyList map[string]Taxonomy

// NewTaxonomy groups posts by the terms the given func extracts from each
// post. A post with no terms contributes no entries; a term listed twice
// on one post counts once. The posts under each term are sorted by the
// default post sort, and an empty post list yields an empty (non-nil)
// Taxonomy.
func NewTaxonomy(posts page.Posts, terms func(p *page.Post) []string) Taxonomy {
	t := make(Taxonomy)

	for _, p := range posts {
		var seen map[string]bool
		for _, term := range terms(p) {
			if term == "" {
				continue
			}
			if seen == nil {
				seen = make(map[string]bool)
			}
			if seen[term] {
				continue
			}
			seen[term] = true
			t[term] = append(t[term], p)
		}
	}

	for _, posts := range t {
		page.SortByDefault(posts)
	}

	return t
}

// Get the posts for the given term, or nil if not found.
func (i Taxonomy) Get(term string) page.Posts {
	return i[term]
}

// Count the posts for the given term.
func (i Taxonomy) Count(term string) int {
	return len(i[term])
}

// Alphabetical returns an ordered view of the taxonomy, terms sorted
// lexicographically. Map iteration order in Go is randomized, so every
// rendering goes through this to stay deterministic.
func (i Taxonomy) Alphabetical() OrderedTaxonomy {
	ot := make(OrderedTaxonomy, 0, len(i))
	for name, posts := range i {
		ot = append(ot, OrderedTaxonomyEntry{Name: name, Posts: posts})
	}
	sort.Slice(ot, func(a, b int) bool {
		return ot[a].Name < ot[b].Name
	})
	return ot
}

// OrderedTaxonomy is an ordered representation of a Taxonomy, ready for
// rendering.
type OrderedTaxonomy []OrderedTaxonomyEntry

// OrderedTaxonomyEntry is one term with its posts.
type OrderedTaxonomyEntry struct {
	Name string
	page.Posts
}

// assembleTaxonomies derives the tag and category taxonomies from the
// site's post collection. The two taxonomies share no state; each holds
// its own term map over the same immutable posts.
func (s *Site) assembleTaxonomies() {
	s.Taxonomies = TaxonomyList{
		"tags": NewTaxonomy(s.Posts, func(p *page.Post) []string {
			return p.Tags
		}),
		"categories": NewTaxonomy(s.Posts, func(p *page.Post) []string {
			return p.Categories
		}),
	}
}
