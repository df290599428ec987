package bloglib

import (
	"context"
	"fmt"
	"sync"

	"github.com/taxoblog/taxoblog/resources/page"
	"github.com/taxoblog/taxoblog/source"
	"golang.org/x/sync/errgroup"
)

const contentProcessors = 4

// readAndProcessContent reads every content file, parses its front matter
// and converts its body. Files are processed concurrently; the post map
// insert happens afterwards so the tree never sees concurrent writes.
func (s *Site) readAndProcessContent(files []*source.File) error {
	g, ctx := errgroup.WithContext(context.Background())

	filec := make(chan *source.File)

	g.Go(func() error {
		defer close(filec)
		for _, fi := range files {
			select {
			case filec <- fi:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var (
		mu    sync.Mutex
		posts []*page.Post
	)

	for i := 0; i < contentProcessors; i++ {
		g.Go(func() error {
			for fi := range filec {
				p, err := s.newPostFromFile(fi)
				if err != nil {
					return err
				}
				mu.Lock()
				posts = append(posts, p)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("process content: %w", err)
	}

	for _, p := range posts {
		if p.Draft {
			continue
		}
		s.postMap.insert(p.File.Path(), p)
	}

	return nil
}
