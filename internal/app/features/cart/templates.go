// internal/app/features/cart/templates.go
package cart

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "cart",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
