package classify

// Committed is a confident classification decision.
type Committed struct {
	Code        string
	Probability Probability
	Margin      Margin
}

// Option is one disambiguation choice offered to the caller.
type Option struct {
	Code  string
	Label string
}

// Clarification asks the caller to disambiguate between candidates.
// Options may be empty when retrieval found nothing at all. The opaque
// question/session identifier is assigned later, when the session is
// created: the decision itself stays a pure function of its inputs.
type Clarification struct {
	Options   []Option
	TopMargin Margin
}

// Decision is the outcome of one classification attempt. Exactly one
// of Committed / Clarification is non-nil.
type Decision struct {
	Committed     *Committed
	Clarification *Clarification

	// Candidates carries the final calibrated set that produced the
	// decision, for session creation and audit. Never persisted beyond
	// the clarification session.
	Candidates CandidateSet
}

// IsCommitted reports whether the pipeline committed to a code.
func (d Decision) IsCommitted() bool {
	return d.Committed != nil
}
