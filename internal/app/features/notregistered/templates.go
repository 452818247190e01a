// internal/app/features/notregistered/templates.go
package notregistered

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "notregistered",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
