package main

import (
	"sort"

	"github.com/go-foundations/coresched"
	"github.com/go-foundations/coresched/policy"
)

// run drives eng tick by tick against trace, acting as the simulator the
// source's libscheduler.c always assumed existed on the other side of its
// API: something that knows wall-clock time, knows when a running job's
// remaining burst hits zero, and reports both events back to the engine.
//
// Per core, at most one of a completion or a quantum rotation is reported
// on any given tick; a job whose remaining burst reaches zero exactly on a
// quantum boundary is reported as a completion, never a rotation.
func run(eng *coresched.Engine, kind policy.Kind, trace []arrival) coresched.Stats {
	const quantum = 2

	sorted := make([]arrival, len(trace))
	copy(sorted, trace)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].at < sorted[j].at })

	// remaining[id] is the burst left as of started[core]'s tick, for
	// whichever core id currently occupies.
	remaining := make(map[int]int, len(sorted))
	started := make(map[int]int, eng.Cores())

	horizon := sorted[len(sorted)-1].at + 1
	for _, a := range sorted {
		horizon += a.runTime
	}

	next := 0
	finished := 0

	for t := 0; finished < len(sorted) && t <= horizon; t++ {
		for c := 0; c < eng.Cores(); c++ {
			id, running := eng.CoreJobID(c)
			if !running {
				continue
			}

			elapsed := t - started[c]
			left := remaining[id] - elapsed

			switch {
			case left <= 0:
				finished++
				if nextID := eng.JobFinished(c, id, t); nextID != coresched.NoChange {
					started[c] = t
				}
			case kind == policy.RR && elapsed == quantum:
				remaining[id] = left
				if nextID := eng.QuantumExpired(c, t); nextID != coresched.NoChange {
					started[c] = t
				}
			}
		}

		before := make(map[int]int, eng.Cores())
		beforeStart := make(map[int]int, eng.Cores())
		for c := 0; c < eng.Cores(); c++ {
			if id, running := eng.CoreJobID(c); running {
				before[c] = id
				beforeStart[c] = started[c]
			} else {
				before[c] = coresched.NoChange
			}
		}

		for next < len(sorted) && sorted[next].at == t {
			a := sorted[next]
			next++

			core := eng.NewJob(a.id, t, a.runTime, a.priority)
			if core == coresched.NoChange {
				remaining[a.id] = a.runTime
				continue
			}

			if victim := before[core]; victim != coresched.NoChange && victim != a.id {
				remaining[victim] -= t - beforeStart[core]
			}

			remaining[a.id] = a.runTime
			started[core] = t
		}
	}

	return eng.Stats()
}
