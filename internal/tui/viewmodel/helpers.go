// Package viewmodel turns session snapshots into plain display data for the
// TUI components.
package viewmodel

import "fmt"

// String returns a string representation of the dialog field.
func (f DialogField) String() string {
	switch f {
	case FieldType:
		return "Type"
	case FieldDateTab:
		return "DateTab"
	case FieldPreset:
		return "Preset"
	case FieldDateOperator:
		return "DateOperator"
	case FieldAmountOperator:
		return "AmountOperator"
	case FieldValue:
		return "Value"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Cycle moves index by delta within n items, wrapping at both ends.
func Cycle(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}
