// Package event provides a pub-sub event bus for decoupled inter-component
// communication in breathe.
//
// This package enables loose coupling between the breathing session core, the
// TUI, and the haptics engine by allowing them to communicate through events
// rather than direct method calls. Components can publish events without
// knowing who will receive them, and subscribe to events without knowing who
// will produce them.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//   - [Base]: Embeddable struct that satisfies the Event interface
//
// Concrete event types live with their producers; the session core defines
// its lifecycle and phase-transition events in the breath package.
//
// # Threading Model
//
// The bus is synchronous: Publish calls each handler in the caller's
// goroutine before returning. Handlers should be fast and must not publish
// recursively without care. If a handler panics, the panic is recovered and
// logged, and delivery continues to the remaining handlers.
package event
