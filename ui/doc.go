// Package ui provides the shared lipgloss styling for renderer CLI output.
//
// The row engine itself emits raw ANSI tokens so its output is byte-exact;
// this package styles everything around it: diagnostics, the glyph listing,
// and version output. It offers:
//
//   - Centralized color palette and theming
//   - Semantic styles (Header, Label, Value, Error, Muted)
//
// The package follows semantic color usage:
//   - Red: Errors
//   - Purple: Headers, emphasis
//   - Cyan: Data values
//   - Gray: Muted text, secondary information
package ui
