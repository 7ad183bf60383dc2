// Package settings persists and restores the state of a control tree.
//
// A Manager is bound at construction to a root control and a default
// backing store. SaveState and LoadState walk the tree applying each
// control's handler; HasUnsavedChanges recomputes the authoritative diff
// between the live tree and a snapshot; the touched flag tracks UI edits
// cheaply between those recomputations.
//
//	root := controls.NewMainWindow("MainWindow", buildContent())
//	mgr := settings.NewManager(root, store.OpenFile(path))
//	mgr.OnTouchedChanged(func(touched bool) { updateTitleBar(touched) })
//	if err := mgr.LoadState(); err != nil { ... }
//
// All operations are synchronous and single-threaded: they are meant to
// run on the UI thread in response to discrete events, and a Manager must
// not be used from multiple goroutines concurrently.
package settings
