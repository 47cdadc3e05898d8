// Package state holds the central widget-value store and the per-widget
// binder that keeps a control's displayed value in sync with it.
//
// Allowed here:
// - value storage with write provenance and fragment forwarding
// - form membership, clear-on-submit policy, and submit broadcasting
// - the mount / user-edit / reset lifecycle of a single widget
//
// Not allowed here:
// - value format validation (a collaborator's job) or terminal rendering
package state
