package hexxagon

// Evaluator scores a state as the Rubies/Pearls piece differential,
// positive favouring Rubies (player Zero). It implements
// minimax.Evaluator[State] without importing the minimax package, since
// Go interfaces are satisfied structurally.
type Evaluator struct{}

// Value returns rubies - pearls as a float32.
func (Evaluator) Value(s State) float32 {
	rubies, pearls := s.Scores()
	return float32(rubies - pearls)
}
