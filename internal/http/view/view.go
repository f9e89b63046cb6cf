package view

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// NewEngine builds the template engine over the embedded view templates.
//
// Two helpers are registered:
//   - json: marshals chart data for inline scripts
//   - safe: renders stored record content as markup, matching the original
//     free-text records which may contain HTML
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// embed guarantees the directory exists; a failure here is a build defect.
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("json", func(v any) template.JS {
		b, err := json.Marshal(v)
		if err != nil {
			return template.JS("null")
		}
		return template.JS(b)
	})
	engine.AddFunc("safe", func(s string) template.HTML {
		return template.HTML(s)
	})
	return engine
}
