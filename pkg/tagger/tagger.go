// Package tagger adapts the prose part-of-speech tagger to classify.Tagger.
package tagger

import (
	"fmt"

	"github.com/jdkato/prose/v2"

	"github.com/minhyannv/toolbot-go/pkg/classify"
)

// Prose tags text with prose's averaged-perceptron model. The model is
// loaded by the first call and reused afterwards. Sentence segmentation and
// entity extraction are disabled. Not safe for concurrent use.
type Prose struct {
	model *prose.Model
}

// New returns a prose-backed tagger.
func New() *Prose {
	return &Prose{}
}

// Tag implements classify.Tagger.
func (p *Prose) Tag(text string) ([]classify.Token, error) {
	opts := []prose.DocOpt{
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	}
	if p.model != nil {
		opts = append(opts, prose.UsingModel(p.model))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("tag text: %w", err)
	}
	if p.model == nil {
		p.model = doc.Model
	}

	tokens := doc.Tokens()
	out := make([]classify.Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, classify.Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

var _ classify.Tagger = (*Prose)(nil)
