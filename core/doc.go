// Package core holds the application shell: the root Bubble Tea model, tab
// and screen plumbing, key and command registries, and the theme.
package core
