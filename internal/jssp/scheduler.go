package jssp

// ScheduledOperation is the result of placing one operation in time.
// It is a flat projection with no back-reference to the source operation;
// End - Start always equals Duration.
type ScheduledOperation struct {
	JobID    int
	Index    int
	Machine  int
	Start    float64
	End      float64
	Duration float64
}

// Scheduler binds an instance for repeated greedy solves. Rule selects the
// dispatch order; nil means instance order (jobs as given, operations by
// index), which is the canonical greedy list-scheduling contract.
type Scheduler struct {
	Jobs     []Job
	Machines int
	Rule     Rule
}

func NewScheduler(jobs []Job, machines int) (*Scheduler, error) {
	inst := &Instance{Jobs: jobs, Machines: machines}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{Jobs: jobs, Machines: machines}, nil
}

// Solve places every operation as early as its machine and its job
// predecessor allow, in the order given by the rule. One pass, no
// backtracking: the result is always feasible, not necessarily optimal.
// The input jobs are not mutated; each call returns a fresh schedule.
func (s *Scheduler) Solve() []ScheduledOperation {
	rule := s.Rule
	if rule == nil {
		rule = inOrder{}
	}

	total := 0
	maxID := 0
	for _, job := range s.Jobs {
		total += len(job.Operations)
		if job.ID > maxID {
			maxID = job.ID
		}
	}

	st := &solveState{
		machineFreeAt: make([]float64, s.Machines),
		// Job ids are small dense integers, so a slice beats a map here.
		jobFreeAt: make([]float64, maxID+1),
		schedule:  make([]ScheduledOperation, 0, total),
	}

	// The in-order rule is the plain job-major traversal: place directly,
	// no ready set to maintain, linear in the operation count.
	if _, ok := rule.(inOrder); ok {
		for _, job := range s.Jobs {
			for _, op := range job.Operations {
				st.place(op)
			}
		}
		return st.schedule
	}

	next := make([]int, len(s.Jobs))
	remaining := make([]float64, len(s.Jobs))
	for jp, job := range s.Jobs {
		for _, op := range job.Operations {
			remaining[jp] += op.Duration
		}
	}

	ready := make([]Candidate, 0, len(s.Jobs))
	for len(st.schedule) < total {
		ready = ready[:0]
		for jp, job := range s.Jobs {
			if next[jp] < len(job.Operations) {
				ready = append(ready, Candidate{
					Op:        job.Operations[next[jp]],
					JobPos:    jp,
					Remaining: remaining[jp],
				})
			}
		}

		c := ready[rule.Pick(ready)]
		st.place(c.Op)
		next[c.JobPos]++
		remaining[c.JobPos] -= c.Op.Duration
	}

	return st.schedule
}

type solveState struct {
	machineFreeAt []float64
	jobFreeAt     []float64
	schedule      []ScheduledOperation
}

// place starts op as soon as both its machine and its job predecessor are
// free, then marks both busy until it ends.
func (st *solveState) place(op Operation) {
	start := st.machineFreeAt[op.Machine]
	if st.jobFreeAt[op.JobID] > start {
		start = st.jobFreeAt[op.JobID]
	}
	end := start + op.Duration

	st.schedule = append(st.schedule, ScheduledOperation{
		JobID:    op.JobID,
		Index:    op.Index,
		Machine:  op.Machine,
		Start:    start,
		End:      end,
		Duration: op.Duration,
	})

	st.machineFreeAt[op.Machine] = end
	st.jobFreeAt[op.JobID] = end
}

// Makespan returns the completion time of the last-finishing operation,
// or 0 for an empty schedule.
func (s *Scheduler) Makespan(schedule []ScheduledOperation) float64 {
	ms := 0.0
	for _, op := range schedule {
		if op.End > ms {
			ms = op.End
		}
	}
	return ms
}
