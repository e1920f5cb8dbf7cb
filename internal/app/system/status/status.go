// internal/app/system/status/status.go
package status

// Account/record statuses shared by clients and employees.
const (
	Active   = "active"
	Disabled = "disabled"
)

// IsValid reports whether s is a recognized status value.
func IsValid(s string) bool {
	return s == Active || s == Disabled
}

// Toggle returns the opposite status. Unknown inputs toggle to disabled.
func Toggle(s string) string {
	if s == Active {
		return Disabled
	}
	return Active
}
