// Package controls defines the adapter model the settings engine operates on.
//
// A Control is a live UI element wrapped by a known adapter: it exposes the
// declared name used as its persistence key, a Kind descriptor used for
// handler dispatch, and the change Signals the engine monitors. Containers
// additionally expose their direct children; a ContentHost (a main window)
// exposes a single designated content area instead.
//
// # Kinds
//
// Kinds form explicit parent chains, replacing runtime type introspection.
// Handler lookup first tries a control's exact kind, then walks the parent
// chain most-derived first. A custom control derives its kind from the
// closest built-in:
//
//	kindVolumeDial := controls.NewKind("volume-dial", controls.KindSlider)
//
// and inherits the slider handler until an exact handler is registered.
//
// # Signals
//
// Signal is a minimal change-notification stream. Connect returns an
// unsubscribe closure; SetBlockSignals suppresses emission on a control
// while the engine applies loaded values, so loading never looks like a
// user edit.
//
// Adapters mutate by reference and never own the underlying element's
// lifetime.
package controls
