package jssp

import "fmt"

// Candidate is a schedulable operation: the earliest unscheduled operation
// of one job. JobPos is the job's position in the instance order, Remaining
// the total duration of the job's unscheduled operations including this one.
type Candidate struct {
	Op        Operation
	JobPos    int
	Remaining float64
}

// Rule is a dispatch priority rule: it picks which candidate to place next.
// Candidates are always presented in instance order (ascending JobPos).
type Rule interface {
	Name() string
	Pick(ready []Candidate) int
}

const (
	RuleInOrder = "INORDER"
	RuleSPT     = "SPT"
	RuleLPT     = "LPT"
	RuleMWR     = "MWR"
)

// InOrder always picks the first candidate, so jobs are locked in strictly
// in the order they appear in the instance. Earlier jobs can starve later
// ones of machine time; that is the nature of the rule, not a defect.
type inOrder struct{}

func (inOrder) Name() string { return RuleInOrder }

func (inOrder) Pick(ready []Candidate) int { return 0 }

// spt picks the candidate with the shortest processing time.
type spt struct{}

func (spt) Name() string { return RuleSPT }

func (spt) Pick(ready []Candidate) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].Op.Duration < ready[best].Op.Duration {
			best = i
		}
	}
	return best
}

// lpt picks the candidate with the longest processing time.
type lpt struct{}

func (lpt) Name() string { return RuleLPT }

func (lpt) Pick(ready []Candidate) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].Op.Duration > ready[best].Op.Duration {
			best = i
		}
	}
	return best
}

// mwr picks the candidate whose job has the most work remaining.
type mwr struct{}

func (mwr) Name() string { return RuleMWR }

func (mwr) Pick(ready []Candidate) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].Remaining > ready[best].Remaining {
			best = i
		}
	}
	return best
}

// Ties always resolve to the earliest job in instance order, so every rule
// is deterministic for a fixed instance.

func NewRule(name string) (Rule, error) {
	switch name {
	case RuleInOrder:
		return inOrder{}, nil
	case RuleSPT:
		return spt{}, nil
	case RuleLPT:
		return lpt{}, nil
	case RuleMWR:
		return mwr{}, nil
	default:
		return nil, fmt.Errorf("unknown priority rule %q", name)
	}
}

func RuleNames() []string {
	return []string{RuleInOrder, RuleSPT, RuleLPT, RuleMWR}
}
