// Package tabs contains the three client tabs: the app feed, the value store
// inspector, and the run history. Panes and the pane host live here too.
package tabs
