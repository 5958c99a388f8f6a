// Package kit contains small value types shared by application state code.
//
// Highlights:
// - Loading[T]: Idle/Failed/InFlight/InFlightWith/Loaded states of an async load
// - CurrentValue/CurrentError/IsInFlight: total accessors, no type switches needed
// - Equal: same state and equal payload; id and creation time are ignored
// - Fold/Map/Tee/Settle: handle every state, transform values, build from (T, error)
// - AnyError/AnyLocalizedError: comparable wrappers over ComparableError values
// - CodedError/Sentinel: ready-made comparable errors
//
// Loading values never change state by themselves. The caller builds a new value
// for every event and owns the ordering of concurrent updates; Id can be used to
// drop responses of a load that is no longer current.
package kit
