package patient

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BundleFetcher assembles a Bundle from a RecordRepository. The demographic
// fetch gates everything: if it fails with ErrNotFound the whole fetch fails.
// The six optional fetches run concurrently and each degrades to nil on its
// own error, so a flaky secondary table cannot abort an assessment.
type BundleFetcher struct {
	repo RecordRepository
}

func NewBundleFetcher(repo RecordRepository) *BundleFetcher {
	return &BundleFetcher{repo: repo}
}

// Fetch returns the full record bundle for one patient. Scoring must not
// start until every sub-fetch has settled; errgroup.Wait provides exactly
// that barrier.
func (f *BundleFetcher) Fetch(ctx context.Context, patientID uuid.UUID) (*Bundle, error) {
	demo, err := f.repo.GetDemographics(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if demo == nil {
		return nil, ErrNotFound
	}

	b := &Bundle{Demographics: demo}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if v, err := f.repo.LatestVitalSigns(gctx, patientID); err == nil {
			b.Vitals = v
		}
		return nil
	})
	g.Go(func() error {
		if labs, err := f.repo.RecentGlucoseLabs(gctx, patientID); err == nil {
			b.GlucoseLabs = labs
		}
		return nil
	})
	g.Go(func() error {
		if h, err := f.repo.LatestHistoryNote(gctx, patientID); err == nil {
			b.History = h
		}
		return nil
	})
	g.Go(func() error {
		if p, err := f.repo.LatestCriticalLabs(gctx, patientID); err == nil {
			b.CriticalLabs = p
		}
		return nil
	})
	g.Go(func() error {
		if n, err := f.repo.LatestNutrition(gctx, patientID); err == nil {
			b.Nutrition = n
		}
		return nil
	})
	g.Go(func() error {
		if e, err := f.repo.LatestExercise(gctx, patientID); err == nil {
			b.Exercise = e
		}
		return nil
	})

	// Goroutines never return errors; Wait is purely the settle barrier.
	_ = g.Wait()
	return b, nil
}
