package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, userID, companyID, role string) session.Context {
	t.Helper()
	tok, err := jwt.NewBuilder().
		Claim("user_id", userID).
		Claim("company_id", companyID).
		Claim("role", role).
		Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	require.NoError(t, err)
	return session.New(string(signed), "", nil)
}

// scriptedFactory hands out sources (or errors) in order, repeating the last one.
type scriptedFactory struct {
	steps []func() (dashboard.Source, error)
	calls int
}

func (f *scriptedFactory) open(session.Context) (dashboard.Source, error) {
	step := f.steps[min(f.calls, len(f.steps)-1)]
	f.calls++
	return step()
}

func okSource() (dashboard.Source, error) {
	return &fakeSource{in: fixtureInputs()}, nil
}

func newTestService(factory dashboard.SourceFactory) *DashboardServiceImpl {
	svc := NewDashboardService(factory, 0, english).(*DashboardServiceImpl)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestRefresh_StoresSnapshot(t *testing.T) {
	factory := &scriptedFactory{steps: []func() (dashboard.Source, error){okSource}}
	svc := newTestService(factory.open)
	sess := newTestSession(t, "user-1", "company-1", "owner")

	snap, err := svc.Refresh(context.Background(), sess)
	require.NoError(t, err)
	assert.False(t, snap.Stale)
	assert.Empty(t, snap.Notice)
	assert.Equal(t, testNow, snap.RefreshedAt)
	assert.Equal(t, 6, snap.ViewModel.Stats.TotalEmployees)

	latest, err := svc.Latest(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, snap, latest)
	assert.Equal(t, 1, factory.calls)
}

func TestLatest_RefreshesWhenEmpty(t *testing.T) {
	factory := &scriptedFactory{steps: []func() (dashboard.Source, error){okSource}}
	svc := newTestService(factory.open)

	snap, err := svc.Latest(context.Background(), newTestSession(t, "user-1", "company-1", "employee"))
	require.NoError(t, err)
	assert.Equal(t, 1, factory.calls)
	assert.Equal(t, "employee", string(snap.ViewModel.Role))
}

func TestRefresh_FailureServesStaleSnapshot(t *testing.T) {
	factory := &scriptedFactory{steps: []func() (dashboard.Source, error){
		okSource,
		func() (dashboard.Source, error) { return nil, dashboard.ErrCompanyScopeMissing },
	}}
	svc := newTestService(factory.open)
	sess := newTestSession(t, "user-1", "company-1", "owner")

	good, err := svc.Refresh(context.Background(), sess)
	require.NoError(t, err)

	stale, err := svc.Refresh(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, stale.Stale)
	assert.Contains(t, stale.Notice, dashboard.ErrCompanyScopeMissing.Error())
	assert.Equal(t, good.ViewModel, stale.ViewModel)
	assert.Equal(t, good.RefreshedAt, stale.RefreshedAt)

	latest, err := svc.Latest(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, latest.Stale)
	assert.False(t, good.Stale, "returned snapshots are copies")
}

func TestRefresh_FailureWithoutSnapshot(t *testing.T) {
	factory := &scriptedFactory{steps: []func() (dashboard.Source, error){
		func() (dashboard.Source, error) { return nil, dashboard.ErrCompanyScopeMissing },
	}}
	svc := newTestService(factory.open)

	_, err := svc.Refresh(context.Background(), newTestSession(t, "user-1", "", "pending"))
	assert.ErrorIs(t, err, dashboard.ErrSnapshotUnavailable)
	assert.ErrorIs(t, err, dashboard.ErrCompanyScopeMissing)
}

func TestRefresh_SessionExpiredDropsSnapshot(t *testing.T) {
	factory := &scriptedFactory{steps: []func() (dashboard.Source, error){
		okSource,
		func() (dashboard.Source, error) {
			return &fakeSource{in: fixtureInputs(), errs: map[string]error{"employees": auth.ErrSessionExpired}}, nil
		},
	}}
	svc := newTestService(factory.open)
	sess := newTestSession(t, "user-1", "company-1", "owner")

	_, err := svc.Refresh(context.Background(), sess)
	require.NoError(t, err)

	snap, err := svc.Refresh(context.Background(), sess)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
	assert.False(t, errors.Is(err, dashboard.ErrSnapshotUnavailable))

	_, err = svc.Latest(context.Background(), sess)
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
	assert.Equal(t, 3, factory.calls)
}

func TestRefresh_SnapshotsAreKeyedBySession(t *testing.T) {
	factory := &scriptedFactory{steps: []func() (dashboard.Source, error){okSource}}
	svc := newTestService(factory.open)

	_, err := svc.Refresh(context.Background(), newTestSession(t, "user-1", "company-1", "owner"))
	require.NoError(t, err)
	_, err = svc.Latest(context.Background(), newTestSession(t, "user-2", "company-1", "owner"))
	require.NoError(t, err)
	_, err = svc.Latest(context.Background(), newTestSession(t, "user-1", "company-2", "owner"))
	require.NoError(t, err)

	assert.Equal(t, 3, factory.calls)
}

func TestRefresh_NoSourceConfigured(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Refresh(context.Background(), newTestSession(t, "user-1", "company-1", "owner"))
	assert.ErrorIs(t, err, dashboard.ErrSourceNotConfigured)
}
