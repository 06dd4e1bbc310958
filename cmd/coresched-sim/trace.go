package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// arrival is one row of a trace: a job that shows up at a given tick with a
// fixed run time and priority. Trace parsing lives in the demonstration
// command rather than the core library, which SPEC_FULL.md §6 places out of
// scope for the engine itself.
type arrival struct {
	id       int
	runTime  int
	at       int
	priority int
}

// loadTrace reads the same "id,burst,arrival,priority" CSV shape the
// independently retrieved TiceShark CPU-scheduler simulator in this corpus
// reads, priority defaulting to 0 when the column is absent.
func loadTrace(r io.Reader) ([]arrival, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trace CSV: %w", err)
	}

	out := make([]arrival, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("trace row %d: want at least 3 columns, got %d", i, len(row))
		}

		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("trace row %d: bad job id %q: %w", i, row[0], err)
		}
		burst, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("trace row %d: bad burst %q: %w", i, row[1], err)
		}
		at, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("trace row %d: bad arrival %q: %w", i, row[2], err)
		}

		priority := 0
		if len(row) >= 4 {
			priority, err = strconv.Atoi(row[3])
			if err != nil {
				return nil, fmt.Errorf("trace row %d: bad priority %q: %w", i, row[3], err)
			}
		}

		out[i] = arrival{id: id, runTime: burst, at: at, priority: priority}
	}

	return out, nil
}
