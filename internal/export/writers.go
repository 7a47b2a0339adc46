package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteJSON saves the full solution, metadata included, as indented JSON.
func (s *Solution) WriteJSON(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// WriteCSV saves the schedule as a flat table, one row per operation,
// numeric fields at two decimal places.
func (s *Solution) WriteCSV(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Job", "Operation", "Machine", "Start Time", "End Time", "Duration"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range s.Schedule {
		row := []string{
			itoa(r.JobID),
			itoa(r.Operation),
			itoa(r.Machine),
			ftoa(r.Start),
			ftoa(r.End),
			ftoa(r.Duration),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteReport saves a fixed-width human-readable summary.
func (s *Solution) WriteReport(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f,
		"JSSP Solution Summary\n"+
			"=====================\n"+
			"Timestamp: %s\n"+
			"Algorithm: %s\n"+
			"Number of Jobs: %d\n"+
			"Number of Machines: %d\n"+
			"Total Operations: %d\n"+
			"Makespan: %.2f\n"+
			"\n"+
			"Schedule Details:\n"+
			"-----------------\n",
		s.Meta.Timestamp.Format("2006-01-02 15:04:05"),
		s.Meta.Algorithm,
		s.Meta.NumJobs,
		s.Meta.NumMachines,
		s.Meta.TotalOperations,
		s.Meta.Makespan,
	)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(f,
		"Job | Op | Machine | Start  | End    | Duration\n"+
			"----+----+---------+--------+--------+---------\n"); err != nil {
		return err
	}
	for _, r := range s.Schedule {
		if _, err := fmt.Fprintf(f, "%3d | %2d | %7d | %6.2f | %6.2f | %6.2f\n",
			r.JobID, r.Operation, r.Machine, r.Start, r.End, r.Duration); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll saves all three formats into dir with timestamped file names
// and returns the paths written.
func (s *Solution) WriteAll(dir string) ([]string, error) {
	ts := s.Meta.Timestamp.Format("20060102_150405")
	paths := []string{
		filepath.Join(dir, fmt.Sprintf("jssp_solution_%s.json", ts)),
		filepath.Join(dir, fmt.Sprintf("jssp_solution_%s.csv", ts)),
		filepath.Join(dir, fmt.Sprintf("jssp_summary_%s.txt", ts)),
	}
	if err := s.WriteJSON(paths[0]); err != nil {
		return nil, err
	}
	if err := s.WriteCSV(paths[1]); err != nil {
		return nil, err
	}
	if err := s.WriteReport(paths[2]); err != nil {
		return nil, err
	}
	return paths, nil
}

func ensureDir(path string) error {
	d := filepath.Dir(path)
	if d == "." || d == "" {
		return nil
	}
	return os.MkdirAll(d, 0o755)
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
