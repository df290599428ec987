package bloglib

import (
	"fmt"
	"html/template"
	"io"
	"path"
	"sync"

	bp "github.com/taxoblog/taxoblog/bufferpool"
	"github.com/taxoblog/taxoblog/output"
	"github.com/taxoblog/taxoblog/publisher"
	"github.com/taxoblog/taxoblog/resources/page"
	"github.com/taxoblog/taxoblog/tpl"
)

const numRenderWorkers = 3

// pageData is the data every template executes against.
type pageData struct {
	Kind      string
	Title     string
	Permalink string
	Content   template.HTML
	Site      *SiteInfo

	// Posts is the post list for list pages. Nil on single pages.
	Posts page.Posts

	// Terms is the ordered term index for taxonomy pages. Nil elsewhere.
	Terms OrderedTaxonomy
}

// renderJob pairs a page with its output location.
type renderJob struct {
	data       *pageData
	targetPath string
}

// renderPages renders every page of the site through a small worker pool.
func (s *Site) renderPages() error {
	results := make(chan error)
	jobs := make(chan renderJob, numRenderWorkers) // buffered for performance
	errs := make(chan error)

	go s.errorCollator(results, errs)

	wg := &sync.WaitGroup{}

	for i := 0; i < numRenderWorkers; i++ {
		wg.Add(1)
		go s.pageRenderer(jobs, results, wg)
	}

	s.postMap.walk(func(key string, p *page.Post) bool {
		jobs <- renderJob{
			data: &pageData{
				Kind:      page.KindPage,
				Title:     p.Title,
				Permalink: p.Permalink,
				Content:   p.Content,
				Site:      s.Info,
			},
			targetPath: p.TargetPath,
		}
		return false
	})

	jobs <- s.homeJob()
	for _, kind := range s.taxonomyKinds() {
		jobs <- s.taxonomyJob(kind)
	}

	close(jobs)
	wg.Wait()
	close(results)

	if err := <-errs; err != nil {
		return fmt.Errorf("render pages: %w", err)
	}
	return nil
}

func (s *Site) pageRenderer(jobs <-chan renderJob, results chan<- error, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		templ, found, err := s.Tmpl().LookupLayout(output.LayoutDescriptor{Kind: job.data.Kind})
		if err != nil {
			results <- err
			continue
		}
		if !found {
			s.Log.Warnf("no layout for kind %q", job.data.Kind)
			continue
		}

		if err := s.renderAndWritePage(job.data.Title, job.targetPath, job.data, templ); err != nil {
			results <- err
		}
	}
}

func (s *Site) homeJob() renderJob {
	return renderJob{
		data: &pageData{
			Kind:      page.KindHome,
			Title:     s.Info.Title,
			Permalink: s.PathSpec.PrependBasePath("/"),
			Site:      s.Info,
			Posts:     s.Posts,
		},
		targetPath: "index.html",
	}
}

// taxonomyJob builds the render job for one taxonomy index page,
// e.g. /tags/ for the "tags" dimension.
func (s *Site) taxonomyJob(kind string) renderJob {
	return renderJob{
		data: &pageData{
			Kind:      page.KindTaxonomy,
			Title:     s.titleFunc(kind),
			Permalink: s.PathSpec.PrependBasePath("/" + kind + "/"),
			Site:      s.Info,
			Terms:     s.Taxonomies[kind].Alphabetical(),
		},
		targetPath: path.Join(kind, "index.html"),
	}
}

// RenderTermsList renders the stand-alone term listing fragment for the
// given taxonomy: a heading per term followed by its post links, terms in
// lexicographic order. An empty taxonomy renders to the empty string.
func (s *Site) RenderTermsList(t Taxonomy) (template.HTML, error) {
	templ, found := s.Tmpl().Lookup("partials/terms.html")
	if !found {
		return "", fmt.Errorf("template %q not found", "partials/terms.html")
	}

	b := bp.GetBuffer()
	defer bp.PutBuffer(b)

	if err := s.Tmpl().Execute(templ, b, t.Alphabetical()); err != nil {
		return "", fmt.Errorf("render terms list: %w", err)
	}

	return template.HTML(b.String()), nil
}

func (s *Site) renderAndWritePage(name, targetPath string, d any, templ tpl.Template) error {
	renderBuffer := bp.GetBuffer()
	defer bp.PutBuffer(renderBuffer)

	if err := s.renderForTemplate(name, d, renderBuffer, templ); err != nil {
		return err
	}

	if renderBuffer.Len() == 0 {
		return nil
	}

	pd := publisher.Descriptor{
		Src:          renderBuffer,
		TargetPath:   targetPath,
		OutputFormat: output.HTMLFormat,
		Minify:       s.conf.Minify,
	}

	return s.publisher.Publish(pd)
}

func (s *Site) renderForTemplate(name string, d any, w io.Writer, templ tpl.Template) error {
	if templ == nil {
		s.Log.Warnf("missing layout for %q", name)
		return nil
	}

	if err := s.Tmpl().Execute(templ, w, d); err != nil {
		return fmt.Errorf("render of %q failed: %w", name, err)
	}
	return nil
}

func (s *Site) errorCollator(results <-chan error, errs chan<- error) {
	var errors []error
	for e := range results {
		errors = append(errors, e)
	}

	errs <- s.pickOneAndLogTheRest(errors)

	close(errs)
}

func (s *Site) pickOneAndLogTheRest(errors []error) error {
	if len(errors) == 0 {
		return nil
	}

	for _, err := range errors[1:] {
		s.Log.Errorf("render: %s", err)
	}

	return errors[0]
}
