package page

const (
	// KindPage is a regular content post.
	KindPage = "page"

	// KindHome is the site home page.
	KindHome = "home"

	// KindTaxonomy is a taxonomy index page, e.g. /tags/ or /categories/.
	KindTaxonomy = "taxonomy"
)
