// Package ui groups the terminal presentation packages of wt.
//
//   - styles: shared lipgloss colours and styles
//   - static: non-interactive rendering (tables)
//   - prompt: interactive prompts built on bubbletea
//
// Interactive components write to stderr so that stdout stays free for the
// path printed to the shell wrapper.
package ui
