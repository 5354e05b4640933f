// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They are the building blocks for fail-fast pipelines: every
// helper runs its function on the success track only and hands a Failure on
// untouched (re-typed when the value type changes).
//
// Highlights:
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - FailOnError: turn a check error into a failure, keeping the value type
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
