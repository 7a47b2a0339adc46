package export

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"jobShop/internal/jssp"
)

const AlgorithmGreedy = "Greedy"

// Meta carries the run metadata attached to every exported solution.
type Meta struct {
	RunID           string    `json:"run_id"`
	Timestamp       time.Time `json:"timestamp"`
	Algorithm       string    `json:"algorithm"`
	NumJobs         int       `json:"num_jobs"`
	NumMachines     int       `json:"num_machines"`
	TotalOperations int       `json:"total_operations"`
	Makespan        float64   `json:"makespan"`
}

// Record is one scheduled operation in wire form.
type Record struct {
	JobID     int     `json:"job_id"`
	Operation int     `json:"operation_id"`
	Machine   int     `json:"machine_id"`
	Start     float64 `json:"start_time"`
	End       float64 `json:"end_time"`
	Duration  float64 `json:"duration"`
}

type Solution struct {
	Meta     Meta     `json:"metadata"`
	Schedule []Record `json:"schedule"`
}

// NewSolution wraps a solved schedule with run metadata. The schedule is
// copied into flat records, so the solution stays valid even if the caller
// reuses the input slice.
func NewSolution(schedule []jssp.ScheduledOperation, numJobs, numMachines int, makespan float64) (*Solution, error) {
	if len(schedule) == 0 {
		return nil, errors.New("schedule is empty")
	}

	records := make([]Record, len(schedule))
	for i, op := range schedule {
		records[i] = Record{
			JobID:     op.JobID,
			Operation: op.Index,
			Machine:   op.Machine,
			Start:     op.Start,
			End:       op.End,
			Duration:  op.Duration,
		}
	}

	return &Solution{
		Meta: Meta{
			RunID:           uuid.New().String(),
			Timestamp:       time.Now(),
			Algorithm:       AlgorithmGreedy,
			NumJobs:         numJobs,
			NumMachines:     numMachines,
			TotalOperations: len(schedule),
			Makespan:        makespan,
		},
		Schedule: records,
	}, nil
}
