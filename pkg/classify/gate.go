package classify

// Gate is the abstention decision rule. It is configuration, not a
// model: commit when the top calibrated probability and the margin to
// the runner-up both clear their thresholds, otherwise defer to
// clarification.
type Gate struct {
	ConfidenceThreshold Probability
	MarginThreshold     Margin
	MaxOptions          int // candidates offered in a clarification
}

// Decide evaluates a calibrated, probability-ordered candidate set.
//
// Edge cases:
//   - empty set: terminal clarification with no options ("no match
//     found"), never an error and never a default code;
//   - single candidate: no runner-up exists, so the margin condition is
//     treated as satisfied and the gate runs on p1 alone.
func (g Gate) Decide(set CandidateSet) Decision {
	if len(set) == 0 {
		return Decision{Clarification: &Clarification{}}
	}

	p1 := set[0].Probability
	margin := UnboundedMargin
	if len(set) > 1 {
		margin = Margin(p1 - set[1].Probability)
	}

	if p1 >= g.ConfidenceThreshold && margin >= g.MarginThreshold {
		return Decision{
			Committed: &Committed{
				Code:        set[0].Code,
				Probability: p1,
				Margin:      margin,
			},
			Candidates: set,
		}
	}

	options := make([]Option, 0, g.MaxOptions)
	for _, c := range set.Truncate(g.MaxOptions) {
		options = append(options, Option{Code: c.Code, Label: c.Content})
	}
	return Decision{
		Clarification: &Clarification{
			Options:   options,
			TopMargin: margin,
		},
		Candidates: set,
	}
}
