package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/healthtrack/internal/client/gateway"
	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

// VitalsService mirrors the remote vitals collection: newest first, ids
// server-assigned. Mutations are applied by id after remote confirmation;
// a failed operation leaves the mirror exactly as it was.
type VitalsService struct {
	api      gateway.API
	notifier Notifier

	mu    sync.Mutex
	items []models.Vital
}

func NewVitalsService(api gateway.API, notifier Notifier) *VitalsService {
	return &VitalsService{api: api, notifier: notifier}
}

func (s *VitalsService) notify(ctx context.Context, format string, args ...any) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf(format, args...))
	}
}

// Refresh replaces the mirror with the remote collection. On failure the
// mirror is emptied rather than left with partial state.
func (s *VitalsService) Refresh(ctx context.Context) error {
	rows, err := s.api.ListVitals(ctx)
	if err != nil {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		s.notify(ctx, "failed to load vitals: %v", err)
		return err
	}

	s.mu.Lock()
	s.items = rows
	s.mu.Unlock()
	return nil
}

// Add records one measurement. No local placeholder is shown before the
// server confirms: the canonical server row (with its assigned id and
// created_at) is prepended only on success.
func (s *VitalsService) Add(ctx context.Context, in models.VitalsCreate) (*models.Vital, error) {
	op := beginOp("create vitals")

	rec, err := s.api.CreateVitals(ctx, in)
	if err != nil {
		op.rollback()
		s.notify(ctx, "failed to save vitals: %v", err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]models.Vital{*rec}, s.items...)
	s.mu.Unlock()
	op.commit()
	return rec, nil
}

// Delete removes one record remotely, then drops it from the mirror by
// id. Failure leaves the mirror untouched, order included.
func (s *VitalsService) Delete(ctx context.Context, id int64) error {
	op := beginOp("delete vitals")

	if err := s.api.DeleteVitals(ctx, id); err != nil {
		op.rollback()
		s.notify(ctx, "failed to delete vitals record: %v", err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	op.commit()
	return nil
}

// List returns a copy of the mirror, newest first.
func (s *VitalsService) List() []models.Vital {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Vital, len(s.items))
	copy(out, s.items)
	return out
}

// Recent returns the last n readings in chronological order, the shape
// the dashboard chart consumes.
func (s *VitalsService) Recent(n int) []models.Vital {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.items) {
		n = len(s.items)
	}
	out := make([]models.Vital, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = s.items[i]
	}
	return out
}

// Summary aggregates the mirror for dashboard display. Latest values come
// from the most recent reading.
func (s *VitalsService) Summary() models.VitalsSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := models.VitalsSummary{TotalEntries: len(s.items)}
	if len(s.items) == 0 {
		return sum
	}

	latest := s.items[0]
	sum.LatestHeartRate = latest.HeartRate
	sum.LatestTemperature = latest.Temperature
	sum.LatestSpO2 = latest.SpO2
	sum.LatestBloodPressure = fmt.Sprintf("%d/%d", latest.BloodPressureSystolic, latest.BloodPressureDiastolic)
	sum.LatestReadingRecorded = latest.CreatedAt
	return sum
}
