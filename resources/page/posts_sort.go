package page

import (
	"sort"
)

// SortByDefault sorts posts by the default sort:
// reverse chronological by date, then title, then source path.
func SortByDefault(posts Posts) {
	postBy(DefaultPostSort).Sort(posts)
}

// DefaultPostSort is the default sort func for post lists:
// order by Weight, Date (newest first), Title and then full file path.
var DefaultPostSort = func(p1, p2 *Post) bool {
	if p1.Weight == p2.Weight {
		if p1.Date.Unix() == p2.Date.Unix() {
			if p1.Title == p2.Title {
				if p1.File == nil || p2.File == nil {
					return p2.File != nil
				}
				return p1.File.Filename() < p2.File.Filename()
			}
			return p1.Title < p2.Title
		}
		return p1.Date.Unix() > p2.Date.Unix()
	}

	if p2.Weight == 0 {
		return true
	}

	if p1.Weight == 0 {
		return false
	}

	return p1.Weight < p2.Weight
}

// postBy is a closure used in the Sort.Less method.
type postBy func(p1, p2 *Post) bool

// Sort stable sorts the posts given the receiver's sort order.
func (by postBy) Sort(posts Posts) {
	ps := &postSorter{
		posts: posts,
		by:    by, // The Sort method's receiver is the function (closure) that defines the sort order.
	}
	sort.Stable(ps)
}

// A postSorter implements the sort interface for Posts
type postSorter struct {
	posts Posts
	by    postBy
}

func (ps *postSorter) Len() int      { return len(ps.posts) }
func (ps *postSorter) Swap(i, j int) { ps.posts[i], ps.posts[j] = ps.posts[j], ps.posts[i] }

// Less is part of sort.Interface. It is implemented by calling the "by" closure in the sorter.
func (ps *postSorter) Less(i, j int) bool { return ps.by(ps.posts[i], ps.posts[j]) }
