// Package breath implements the guided box-breathing core: the four-phase
// cycle, the per-phase one-shot timer that advances it, and the session
// clock that counts elapsed whole seconds.
//
// # Main Types
//
//   - [Phase]: The four breathing phases in fixed cyclic order
//   - [Durations]: Per-phase durations (default 4s each, a 16s cycle)
//   - [Clock]: Counts elapsed seconds while a session is active
//   - [Cycler]: Advances the phase cycle and emits one transition per entry
//   - [Session]: Facade owning one Clock and one Cycler, publishing events
//
// # Threading Model
//
// Clock and Cycler serialize all state mutation under an internal mutex.
// Timer callbacks re-check liveness under that mutex, so a Stop call
// guarantees no further callback fires or mutates state after it returns.
// Observer callbacks run on the timer goroutine with the component's lock
// held; they must not call back into the component.
package breath
