package bloglib

import (
	"fmt"
	"html/template"
	"path/filepath"
	"sort"

	"github.com/taxoblog/taxoblog/deps"
	"github.com/taxoblog/taxoblog/helpers"
	"github.com/taxoblog/taxoblog/publisher"
	"github.com/taxoblog/taxoblog/resources/page"
	"github.com/taxoblog/taxoblog/source"
	"github.com/taxoblog/taxoblog/tpl/tplimpl"
)

// Site contains all the information relevant for constructing a static
// site. The basic flow of a build looks like this:
//
//	1. Read the content files and parse them into posts.
//	2. Assemble the post collection and the taxonomies.
//	3. Render everything through the templates and publish it.
type Site struct {
	*deps.Deps

	conf siteConfigHolder

	// Info is the site metadata exposed to templates as .Site.
	Info *SiteInfo

	// Posts holds every non-draft post, in the default sort order.
	Posts page.Posts

	// Taxonomies maps "tags" and "categories" to their term indexes.
	// Populated by assembleTaxonomies during a build.
	Taxonomies TaxonomyList

	postMap *postMap

	publisher publisher.Publisher

	titleFunc func(s string) string
}

// SiteInfo is the site metadata available to every template.
type SiteInfo struct {
	Title string
}

// NewSite creates a new site from the given configuration.
func NewSite(cfg deps.DepsCfg) (*Site, error) {
	conf, err := decodeSiteConfig(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	d, err := deps.New(cfg)
	if err != nil {
		return nil, err
	}

	s := &Site{
		Deps:      d,
		conf:      conf,
		Info:      &SiteInfo{Title: conf.Title},
		postMap:   newPostMap(),
		titleFunc: helpers.GetTitleFunc(cfg.Cfg.GetString("titleCaseStyle")),
	}

	funcs := template.FuncMap{
		"urlize": d.PathSpec.URLize,
	}

	layoutsDir := filepath.Join(conf.WorkingDir, conf.LayoutsDir)
	tmpl, err := tplimpl.NewTemplateHandler(d.Fs.Source, layoutsDir, funcs)
	if err != nil {
		return nil, err
	}
	d.SetTmpl(tmpl)

	pub, err := publisher.NewDestinationPublisher(d.Fs.PublishDir, d.OutputFormatsConfig, d.MediaTypesConfig, cfg.Cfg)
	if err != nil {
		return nil, err
	}
	s.publisher = pub

	return s, nil
}

// Build runs a full site build: capture, process, assemble, render.
func (s *Site) Build() error {
	files, err := s.captureContent()
	if err != nil {
		return err
	}

	if err := s.readAndProcessContent(files); err != nil {
		return err
	}

	s.assemblePosts()
	s.assembleTaxonomies()

	if err := s.renderPages(); err != nil {
		return err
	}

	s.Log.Infof("built %d post(s), %d tag(s), %d category(s)",
		len(s.Posts), len(s.Taxonomies["tags"]), len(s.Taxonomies["categories"]))

	return nil
}

// captureContent walks the content dir and collects the Markdown sources.
func (s *Site) captureContent() ([]*source.File, error) {
	contentDir := filepath.Join(s.conf.WorkingDir, s.conf.ContentDir)

	if exists, err := helpers.DirExists(contentDir, s.Fs.Source); err != nil || !exists {
		// A site without content still renders its home and index pages.
		return nil, err
	}

	fsys := s.SourceSpec.NewFilesystem(contentDir)
	all, err := fsys.Files()
	if err != nil {
		return nil, fmt.Errorf("capture content in %q: %w", contentDir, err)
	}

	var files []*source.File
	for _, fi := range all {
		if s.ContentSpec.ResolveMarkup(fi.Ext()) != "markdown" {
			continue
		}
		files = append(files, fi)
	}

	return files, nil
}

// assemblePosts flattens the post map into the site's post collection and
// puts it in the default order.
func (s *Site) assemblePosts() {
	s.Posts = s.postMap.assemble()
	page.SortByDefault(s.Posts)
}

// Tags returns the tag taxonomy. Nil before a build.
func (s *Site) Tags() Taxonomy {
	return s.Taxonomies["tags"]
}

// Categories returns the category taxonomy. Nil before a build.
func (s *Site) Categories() Taxonomy {
	return s.Taxonomies["categories"]
}

// taxonomyKinds returns the taxonomy dimensions in a stable order.
func (s *Site) taxonomyKinds() []string {
	kinds := make([]string, 0, len(s.Taxonomies))
	for k := range s.Taxonomies {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
