// Package templates holds the page shell shared by every HTML page.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	layoutHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`
	layoutBodyOpen = `</title>
<link rel="stylesheet" href="/static/portfolio.css">
</head>
<body>
<header class="site-header"><a class="site-title" href="/">`
	layoutMain = `</a><nav><a href="/">Projects</a></nav></header>
<main class="site-main">
`
	layoutTail = `
</main>
<footer class="site-footer">Built from public GitHub repositories.</footer>
</body>
</html>
`
)

// Layout wraps body in the HTML document shell. title ends up in <title>
// and siteName in the header; both are escaped.
func Layout(title, siteName string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, part := range []string{layoutHead, templ.EscapeString(title), layoutBodyOpen, templ.EscapeString(siteName), layoutMain} {
			if _, err := io.WriteString(w, part); err != nil {
				return err
			}
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, layoutTail)
		return err
	})
}
