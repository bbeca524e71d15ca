package solver

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/painterjd/driveyanutssolver/internal/generator"
	"github.com/painterjd/driveyanutssolver/internal/piece"
)

// searchParallel fans candidates out across a bounded pool of workers.
// Each candidate owns a private board, so workers share nothing beyond the
// read-only piece set. Results are merged and sorted back into generation
// order, making the output identical to the sequential search.
func (s *Solver) searchParallel(ctx context.Context) ([]Solution, error) {
	workers := s.options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type job struct {
		candidate   int
		arrangement [piece.NumPieces]piece.Piece
	}

	// Buffered so the feeder stays ahead of the workers without queueing
	// the whole search space.
	jobs := make(chan job, workers*2)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		solutions []Solution
		firstErr  error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				found, err := checkCandidate(j.candidate, j.arrangement)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				solutions = append(solutions, found...)
				mu.Unlock()
			}
		}()
	}

	gen := generator.New(s.set, &generator.Options{Limit: s.options.Limit})
	candidates := 0
feed:
	for candidate := 0; ; candidate++ {
		arrangement, ok := gen.Next()
		if !ok {
			break
		}

		select {
		case jobs <- job{candidate: candidate, arrangement: arrangement}:
			candidates++
		case <-ctx.Done():
			mu.Lock()
			if firstErr == nil {
				firstErr = ErrTimeout
			}
			mu.Unlock()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(solutions, func(i, j int) bool {
		if solutions[i].Candidate != solutions[j].Candidate {
			return solutions[i].Candidate < solutions[j].Candidate
		}
		return solutions[i].Rotation < solutions[j].Rotation
	})

	s.stats.Candidates = candidates
	s.stats.Passes = candidates * piece.NumSides
	s.stats.Solutions = len(solutions)
	return solutions, nil
}
