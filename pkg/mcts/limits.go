package mcts

import "time"

// stopKind distinguishes the two stop conditions a search can be given.
type stopKind int

const (
	byIterations stopKind = iota
	byTime
)

// StopCondition bounds one decision's search: either a fixed iteration
// count, or a wall-clock budget checked between iterations (the
// in-flight iteration is always allowed to finish, bounding overshoot to
// at most one iteration's duration).
type StopCondition struct {
	kind       stopKind
	iterations int
	duration   time.Duration
}

// Iterations stops the search after exactly n iterations.
func Iterations(n int) StopCondition {
	if n <= 0 {
		panic("mcts: Iterations requires n > 0")
	}
	return StopCondition{kind: byIterations, iterations: n}
}

// Time stops the search once the wall-clock budget d has elapsed.
func Time(d time.Duration) StopCondition {
	if d <= 0 {
		panic("mcts: Time requires d > 0")
	}
	return StopCondition{kind: byTime, duration: d}
}
