package jssp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	for _, name := range RuleNames() {
		r, err := NewRule(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.Name())
	}

	_, err := NewRule("FIFO")
	require.Error(t, err)
}

func TestRulePicks(t *testing.T) {
	ready := []Candidate{
		{Op: Operation{JobID: 0, Duration: 5}, JobPos: 0, Remaining: 12},
		{Op: Operation{JobID: 1, Duration: 2}, JobPos: 1, Remaining: 20},
		{Op: Operation{JobID: 2, Duration: 9}, JobPos: 2, Remaining: 9},
	}

	pick := func(name string) int {
		r, err := NewRule(name)
		require.NoError(t, err)
		return r.Pick(ready)
	}

	assert.Equal(t, 0, pick(RuleInOrder))
	assert.Equal(t, 1, pick(RuleSPT))
	assert.Equal(t, 2, pick(RuleLPT))
	assert.Equal(t, 1, pick(RuleMWR))
}

func TestRuleTiesResolveToEarliestJob(t *testing.T) {
	ready := []Candidate{
		{Op: Operation{JobID: 0, Duration: 4}, JobPos: 0, Remaining: 4},
		{Op: Operation{JobID: 1, Duration: 4}, JobPos: 1, Remaining: 4},
	}
	for _, name := range RuleNames() {
		r, err := NewRule(name)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Pick(ready), "rule %s", name)
	}
}

func TestAllRulesProduceFeasibleSchedules(t *testing.T) {
	inst := RandomInstance(8, 5, 1, 12, rand.New(rand.NewSource(21)))

	for _, name := range RuleNames() {
		t.Run(name, func(t *testing.T) {
			rule, err := NewRule(name)
			require.NoError(t, err)

			s, err := NewScheduler(inst.Jobs, inst.Machines)
			require.NoError(t, err)
			s.Rule = rule

			schedule := s.Solve()
			require.Len(t, schedule, inst.TotalOperations())
			assertFeasible(t, inst, schedule)
			assert.Greater(t, s.Makespan(schedule), 0.0)
		})
	}
}

// firstReady picks like the in-order rule but, being a distinct type, is
// driven through the ready-set traversal instead of the direct one. Both
// paths must produce identical schedules.
type firstReady struct{}

func (firstReady) Name() string { return "FIRST" }

func (firstReady) Pick(ready []Candidate) int { return 0 }

func TestReadySetPathMatchesDirectPath(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		inst := RandomInstance(7, 5, 1, 10, rand.New(rand.NewSource(seed)))

		direct, err := NewScheduler(inst.Jobs, inst.Machines)
		require.NoError(t, err)

		viaRule, err := NewScheduler(inst.Jobs, inst.Machines)
		require.NoError(t, err)
		viaRule.Rule = firstReady{}

		assert.Equal(t, direct.Solve(), viaRule.Solve())
	}
}

// The solver with the default rule must match the plain nested-loop
// formulation exactly, not just produce a feasible result.
func TestInOrderMatchesNestedLoops(t *testing.T) {
	inst := RandomInstance(6, 4, 1, 10, rand.New(rand.NewSource(33)))

	machineFreeAt := make([]float64, inst.Machines)
	jobFreeAt := make([]float64, len(inst.Jobs))
	var want []ScheduledOperation
	for _, job := range inst.Jobs {
		for _, op := range job.Operations {
			start := machineFreeAt[op.Machine]
			if jobFreeAt[op.JobID] > start {
				start = jobFreeAt[op.JobID]
			}
			end := start + op.Duration
			want = append(want, ScheduledOperation{
				JobID: op.JobID, Index: op.Index, Machine: op.Machine,
				Start: start, End: end, Duration: op.Duration,
			})
			machineFreeAt[op.Machine] = end
			jobFreeAt[op.JobID] = end
		}
	}

	s, err := NewScheduler(inst.Jobs, inst.Machines)
	require.NoError(t, err)
	assert.Equal(t, want, s.Solve())
}
