// Package publisher writes rendered pages to their destination.
package publisher

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	bp "github.com/taxoblog/taxoblog/bufferpool"
	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/helpers"
	"github.com/taxoblog/taxoblog/media"
	"github.com/taxoblog/taxoblog/minifiers"
	"github.com/taxoblog/taxoblog/output"
	"github.com/taxoblog/taxoblog/transform"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The OutputFormat of this content.
	OutputFormat output.Format

	// Where to publish this content. This is a filesystem-relative path.
	TargetPath string

	// Enable to minify the output using the OutputFormat defined above to
	// pick the correct minifier configuration.
	Minify bool
}

// NewDestinationPublisher creates a new DestinationPublisher.
func NewDestinationPublisher(fs afero.Fs, outputFormats output.Formats, mediaTypes media.Types, cfg config.Provider) (pub DestinationPublisher, err error) {
	pub = DestinationPublisher{fs: fs}
	pub.min, err = minifiers.New(mediaTypes, outputFormats, cfg)
	return
}

// DestinationPublisher is the default and currently only publisher.
// It prepares and publishes an item to the defined destination, e.g. /public.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client
}

// Publish applies any relevant transformations and writes the file
// to its destination, e.g. /public.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	src := d.Src

	transformers := p.createTransformerChain(d)

	if len(transformers) != 0 {
		b := bp.GetBuffer()
		defer bp.PutBuffer(b)

		if err := transformers.Apply(b, d.Src); err != nil {
			return fmt.Errorf("failed to process %q: %w", d.TargetPath, err)
		}

		// This is now what we write to disk.
		src = b
	}

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, src)

	return err
}

func (p DestinationPublisher) createTransformerChain(f Descriptor) transform.Chain {
	transformers := transform.NewEmpty()

	if f.Minify {
		if tr := p.min.Transformer(f.OutputFormat.MediaType); tr != nil {
			transformers = append(transformers, tr)
		}
	}

	return transformers
}
