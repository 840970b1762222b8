package web

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"todo-cli/internal/docs"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML passthrough stays off (no html.WithUnsafe) so rendered docs cannot inject markup.
var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM, emoji.Emoji),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

func renderMarkdownHTML(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var b bytes.Buffer
	if err := markdownRenderer.Convert([]byte(src), &b); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(b.String())
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>todo dev service</title>
<style>body{font-family:system-ui,sans-serif;max-width:46rem;margin:2rem auto;padding:0 1rem;line-height:1.5}code,pre{background:#f4f4f4}</style>
</head>
<body>
{{.Body}}
<p><a href="{{.Prefix}}/todos">{{.Prefix}}/todos</a> · <a href="/metrics">/metrics</a></p>
</body>
</html>
`))

// handleIndex describes the service for someone who opens it in a browser.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	md, _ := docs.Get("serve")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTmpl.Execute(w, map[string]any{
		"Body":   renderMarkdownHTML(md),
		"Prefix": s.cfg.Prefix,
	})
	if err != nil {
		s.log.Warn("render index", "err", err)
	}
}
