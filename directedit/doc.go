// Package directedit decides whether a key press should start an in-place
// edit of a diagram label, and which kind of edit.
//
// The decision is a pure function of one key event and a snapshot of the
// current selection. It keeps no state between calls; the editing session
// that follows an activation is tracked by a Session owned by the caller.
package directedit
