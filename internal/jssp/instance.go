package jssp

import (
	"errors"
	"fmt"
)

// Operation is one unit of work: it belongs to a job, sits at a fixed
// position in that job's sequence, and occupies one machine for Duration
// time units.
type Operation struct {
	JobID    int
	Index    int
	Machine  int
	Duration float64
}

// Job is an ordered sequence of operations. The order is the only
// precedence constraint: operation i cannot start before operation i-1
// of the same job has finished.
type Job struct {
	ID         int
	Operations []Operation
}

type Instance struct {
	Jobs     []Job
	Machines int
}

func NewInstance(jobs []Job, machines int) (*Instance, error) {
	inst := &Instance{Jobs: jobs, Machines: machines}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if len(inst.Jobs) == 0 {
		return errors.New("instance must contain at least one job")
	}
	if inst.Machines <= 0 {
		return fmt.Errorf("machines must be > 0 (got %d)", inst.Machines)
	}
	seen := make(map[int]bool, len(inst.Jobs))
	for j, job := range inst.Jobs {
		if job.ID < 0 {
			return fmt.Errorf("job %d: id must be >= 0 (got %d)", j, job.ID)
		}
		if seen[job.ID] {
			return fmt.Errorf("duplicate job id %d", job.ID)
		}
		seen[job.ID] = true
		if len(job.Operations) == 0 {
			return fmt.Errorf("job %d has no operations", job.ID)
		}
		for i, op := range job.Operations {
			if op.JobID != job.ID {
				return fmt.Errorf("job %d op %d: job id mismatch (got %d)", job.ID, i, op.JobID)
			}
			if op.Index != i {
				return fmt.Errorf("job %d op %d: index must equal position (got %d)", job.ID, i, op.Index)
			}
			if op.Machine < 0 || op.Machine >= inst.Machines {
				return fmt.Errorf("job %d op %d: machine %d out of range [0,%d)", job.ID, i, op.Machine, inst.Machines)
			}
			if op.Duration <= 0 {
				return fmt.Errorf("job %d op %d: duration must be > 0 (got %g)", job.ID, i, op.Duration)
			}
		}
	}
	return nil
}

// TotalOperations returns the number of operations across all jobs.
func (inst *Instance) TotalOperations() int {
	n := 0
	for _, job := range inst.Jobs {
		n += len(job.Operations)
	}
	return n
}
