// StepEvent is the immutable record of one executed step.
//
// Events are value types handed to tracers by the engine. The engine does
// not retain them; a tracer that wants a history must keep its own copy.
package primitives

// StepEvent describes a single applied transition.
type StepEvent struct {
	Step     int        // 1-based step number
	Rule     Transition // rule that fired
	Position int        // head position within the band before the move
	Halted   bool       // Rule.Dest is the halt state; no move was applied
}

// NewStepEvent creates a StepEvent.
func NewStepEvent(step int, rule Transition, position int, halted bool) StepEvent {
	return StepEvent{
		Step:     step,
		Rule:     rule,
		Position: position,
		Halted:   halted,
	}
}
