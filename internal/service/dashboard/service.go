package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/locale"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
)

type DashboardServiceImpl struct {
	sources dashboard.SourceFactory
	pause   time.Duration
	labels  *locale.Labels
	now     func() time.Time

	mu        sync.RWMutex
	snapshots map[string]*dashboard.DashboardSnapshot
}

func NewDashboardService(sources dashboard.SourceFactory, pause time.Duration, labels *locale.Labels) dashboard.DashboardService {
	if labels == nil {
		labels = locale.New("")
	}
	return &DashboardServiceImpl{
		sources:   sources,
		pause:     pause,
		labels:    labels,
		now:       time.Now,
		snapshots: make(map[string]*dashboard.DashboardSnapshot),
	}
}

// Latest implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Latest(ctx context.Context, sess session.Context) (*dashboard.DashboardSnapshot, error) {
	if snap := s.lookup(sess.Key()); snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx, sess)
}

// Refresh implements dashboard.DashboardService.
//
// A successful refresh replaces the session's snapshot. A failed refresh
// keeps the last good view model and returns it marked stale with the error
// as notice. An expired session drops the snapshot and returns the error.
func (s *DashboardServiceImpl) Refresh(ctx context.Context, sess session.Context) (*dashboard.DashboardSnapshot, error) {
	key := sess.Key()

	vm, err := s.build(ctx, sess)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			s.forget(key)
			return nil, err
		}

		prev := s.lookup(key)
		if prev == nil {
			return nil, fmt.Errorf("%w: %w", dashboard.ErrSnapshotUnavailable, err)
		}
		slog.Warn("dashboard refresh failed, serving last snapshot", "session", key, "error", err)
		prev.Stale = true
		prev.Notice = err.Error()
		s.store(key, prev)

		out := *prev
		return &out, nil
	}

	snap := &dashboard.DashboardSnapshot{
		ViewModel:   vm,
		RefreshedAt: vm.GeneratedAt,
	}
	s.store(key, snap)

	out := *snap
	return &out, nil
}

func (s *DashboardServiceImpl) build(ctx context.Context, sess session.Context) (dashboard.DashboardViewModel, error) {
	if s.sources == nil {
		return dashboard.DashboardViewModel{}, dashboard.ErrSourceNotConfigured
	}
	source, err := s.sources(sess)
	if err != nil {
		return dashboard.DashboardViewModel{}, fmt.Errorf("failed to open dashboard source: %w", err)
	}

	role := sess.Role()
	in, err := NewLoader(source, s.pause).LoadInputs(ctx, role)
	if err != nil {
		return dashboard.DashboardViewModel{}, err
	}
	return BuildViewModel(in, role, s.now(), s.labels), nil
}

// lookup returns a copy of the session's snapshot, or nil.
func (s *DashboardServiceImpl) lookup(key string) *dashboard.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[key]
	if !ok {
		return nil
	}
	out := *snap
	return &out
}

func (s *DashboardServiceImpl) store(key string, snap *dashboard.DashboardSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = snap
}

func (s *DashboardServiceImpl) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, key)
}
