package web

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy

	readmeBaseKey = parser.NewContextKey()
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(relativeLinkResolver{}, 100)),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// ReadmeBase locates a repository's files so relative README links resolve.
type ReadmeBase struct {
	Account string
	Repo    string
	Branch  string // "" resolves against HEAD
}

func (b ReadmeBase) ref() string {
	if b.Branch == "" {
		return "HEAD"
	}
	return b.Branch
}

// rawPrefix is where relative image sources resolve.
func (b ReadmeBase) rawPrefix() string {
	return "https://raw.githubusercontent.com/" + b.Account + "/" + b.Repo + "/" + b.ref() + "/"
}

// blobPrefix is where relative links resolve.
func (b ReadmeBase) blobPrefix() string {
	return "https://github.com/" + b.Account + "/" + b.Repo + "/blob/" + b.ref() + "/"
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	return render(src, parser.NewContext())
}

// RenderReadme converts a repository README to sanitized HTML, rewriting
// relative image and link targets to absolute GitHub URLs.
func RenderReadme(src string, base ReadmeBase) string {
	pc := parser.NewContext()
	if base.Account != "" && base.Repo != "" {
		pc.Set(readmeBaseKey, base)
	}
	return render(src, pc)
}

func render(src string, pc parser.Context) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf, parser.WithContext(pc)); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// relativeLinkResolver rewrites relative destinations when the parser
// context carries a ReadmeBase.
type relativeLinkResolver struct{}

func (relativeLinkResolver) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	base, ok := pc.Get(readmeBaseKey).(ReadmeBase)
	if !ok {
		return
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Image:
			node.Destination = resolveRelative(base.rawPrefix(), node.Destination)
		case *ast.Link:
			node.Destination = resolveRelative(base.blobPrefix(), node.Destination)
		}
		return ast.WalkContinue, nil
	})
}

// resolveRelative prefixes dest when it is a plain relative path. Absolute
// URLs, protocol-relative URLs and fragment links are returned unchanged.
func resolveRelative(prefix string, dest []byte) []byte {
	d := string(dest)
	if d == "" || strings.HasPrefix(d, "#") || strings.HasPrefix(d, "//") {
		return dest
	}
	u, err := url.Parse(d)
	if err != nil || u.Scheme != "" {
		return dest
	}

	d = strings.TrimPrefix(d, "./")
	d = strings.TrimLeft(d, "/")
	return []byte(prefix + d)
}
