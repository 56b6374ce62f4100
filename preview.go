package pullbadge

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PreviewImage is the image found in a markdown embed.
type PreviewImage struct {
	Source string
	Alt    string
}

// RenderPreview renders a markdown embed to HTML, the way a README would
// show it.
func RenderPreview(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}

// ExtractPreviewImage returns the first image in a markdown embed.
// It is used to check that a generated embed parses back to the badge URL.
func ExtractPreviewImage(markdown string) (PreviewImage, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var img PreviewImage
	found := false
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}
		if im, ok := n.(*ast.Image); ok {
			img = PreviewImage{
				Source: string(im.Destination),
				Alt:    string(im.Text(source)),
			}
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return PreviewImage{}, err
	}
	if !found {
		return PreviewImage{}, errors.New("no image in markdown")
	}
	return img, nil
}
