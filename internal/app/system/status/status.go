// Package status defines the lifecycle status values shared by courses
// and user accounts.
package status

const (
	Active   = "active"
	Disabled = "disabled"
)

// IsValid reports whether s is a recognized status value.
func IsValid(s string) bool {
	return s == Active || s == Disabled
}
