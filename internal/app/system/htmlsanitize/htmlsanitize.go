// Package htmlsanitize strips dangerous markup from admin-entered
// rich-text fields (course descriptions, group descriptions) before
// they are persisted.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func ugc() *bluemonday.Policy {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Clean sanitizes an HTML fragment, keeping the usual user-generated
// content tags (paragraphs, lists, links, emphasis) and dropping
// scripts, event handlers, and styles.
func Clean(s string) string {
	return ugc().Sanitize(s)
}

// CleanHTML sanitizes and returns the fragment as template.HTML so it
// renders unescaped.
func CleanHTML(s string) template.HTML {
	return template.HTML(Clean(s)) // #nosec G203 -- sanitized above
}
