// Package transform provides the publishing transformer chain.
package transform

import (
	"bytes"
	"io"

	bp "github.com/taxoblog/taxoblog/bufferpool"
)

// Transformer is the func that needs to be implemented by a transformation step.
type Transformer func(ft FromTo) error

// BytesReader wraps the Bytes method, usually implemented by bytes.Buffer, and an
// io.Reader.
type BytesReader interface {
	// The slice given by Bytes is valid for use only until the next buffer modification.
	Bytes() []byte

	io.Reader
}

// FromTo is sent to the transformers.
type FromTo interface {
	From() BytesReader
	To() io.Writer
}

// Chain is an ordered processing chain. The next transform operation will
// receive the output from the previous.
type Chain []Transformer

// New creates a content transformer chain given the provided transforms.
func New(trs ...Transformer) Chain {
	return trs
}

// NewEmpty creates an empty transformer chain.
func NewEmpty() Chain {
	return make(Chain, 0, 2)
}

type fromToBuffer struct {
	from *bytes.Buffer
	to   *bytes.Buffer
}

func (ft fromToBuffer) From() BytesReader {
	return ft.from
}

func (ft fromToBuffer) To() io.Writer {
	return ft.to
}

// Apply passes the given from io.Reader through the transformation chain.
// The result is written to to.
func (c *Chain) Apply(to io.Writer, from io.Reader) error {
	if len(*c) == 0 {
		_, err := io.Copy(to, from)
		return err
	}

	b1 := bp.GetBuffer()
	defer bp.PutBuffer(b1)

	if _, err := b1.ReadFrom(from); err != nil {
		return err
	}

	b2 := bp.GetBuffer()
	defer bp.PutBuffer(b2)

	fb := &fromToBuffer{from: b1, to: b2}

	for i, tr := range *c {
		if i > 0 {
			fb.from, fb.to = fb.to, fb.from
			fb.to.Reset()
		}

		if err := tr(fb); err != nil {
			return err
		}
	}

	_, err := fb.to.WriteTo(to)
	return err
}
