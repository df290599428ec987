package bloglib

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/taxoblog/taxoblog/common/maps"
	"github.com/taxoblog/taxoblog/helpers"
	"github.com/taxoblog/taxoblog/markup/converter"
	"github.com/taxoblog/taxoblog/parser/pageparser"
	"github.com/taxoblog/taxoblog/resources/page"
	"github.com/taxoblog/taxoblog/source"
	"github.com/taxoblog/taxoblog/types"
)

// Jekyll-style post filenames carry the publication date as a prefix,
// e.g. "2023-05-12-building-task-lists.md".
var dateNameRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// newPostFromFile reads, parses and converts one content file into a Post.
func (s *Site) newPostFromFile(fi *source.File) (*page.Post, error) {
	f, err := s.Fs.Source.Open(fi.Filename())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cf, err := pageparser.ParseFrontMatterAndContent(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", fi.Path(), err)
	}

	params, ok := maps.ToParamsAndPrepare(cf.FrontMatter)
	if !ok {
		return nil, fmt.Errorf("invalid front matter in %q", fi.Path())
	}

	p := &page.Post{
		Params: params,
		File:   fi,
	}

	var slug, urlOverride string

	for k, v := range params {
		switch k {
		case "title":
			p.Title = cast.ToString(v)
		case "date":
			p.Date = cast.ToTime(v)
		case "weight":
			p.Weight = cast.ToInt(v)
		case "draft":
			p.Draft = cast.ToBool(v)
		case "slug":
			slug = cast.ToString(v)
		case "url":
			urlOverride = cast.ToString(v)
		case "tags":
			p.Tags = types.ToStringSlicePreserveString(v)
		case "categories":
			p.Categories = types.ToStringSlicePreserveString(v)
		}
	}

	name := fi.BaseFileName()
	if m := dateNameRe.FindStringSubmatch(name); m != nil {
		if p.Date.IsZero() {
			if d, err := time.Parse("2006-01-02", m[1]); err == nil {
				p.Date = d
			}
		}
		name = m[2]
	}

	if p.Title == "" {
		p.Title = s.titleFunc(strings.ReplaceAll(name, "-", " "))
	}
	if slug == "" {
		slug = name
	}

	p.Permalink, p.TargetPath = s.postPaths(fi.Section(), slug, urlOverride)

	if err := s.convertContent(p, cf.Content); err != nil {
		return nil, err
	}

	return p, nil
}

// postPaths derives the post's permalink and its publishDir-relative
// target path. An explicit url from front matter wins over the
// section/slug scheme.
func (s *Site) postPaths(section, slug, urlOverride string) (permalink, targetPath string) {
	var rel string
	if urlOverride != "" {
		rel = path.Clean("/" + strings.TrimSuffix(urlOverride, "/"))
	} else {
		rel = path.Join("/", s.PathSpec.URLize(section), s.PathSpec.URLize(slug))
	}

	targetPath = path.Join(strings.TrimPrefix(rel, "/"), "index.html")
	permalink = s.PathSpec.PrependBasePath(helpers.AddTrailingSlash(rel))

	return
}

// convertContent runs the Markdown body through the configured converter.
func (s *Site) convertContent(p *page.Post, src []byte) error {
	provider := s.ContentSpec.Converters.Get("markdown")
	if provider == nil {
		return fmt.Errorf("no markdown converter configured")
	}

	conv, err := provider.New(converter.DocumentContext{
		DocumentID:   p.File.UniqueID(),
		DocumentName: p.File.Path(),
		Filename:     p.File.Filename(),
	})
	if err != nil {
		return err
	}

	r, err := conv.Convert(converter.RenderContext{Src: src})
	if err != nil {
		return fmt.Errorf("convert %q: %w", p.File.Path(), err)
	}

	p.Content = helpers.BytesToHTML(r.Bytes())

	return nil
}
