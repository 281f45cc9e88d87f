package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndRead(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	cases := []CaseResult{
		{CaseID: "a", Problem: "mex", Success: true, DurationMs: 1},
		{CaseID: "b", Problem: "coloring", Success: false, DurationMs: 2, Error: "output mismatch"},
	}
	started := time.UnixMilli(1_700_000_000_000)
	id, err := s.Record(ctx, Run{
		Battery:    "battery.yaml",
		StartedAt:  started,
		DurationMs: 5,
		Passed:     1,
		Failed:     1,
		Cases:      cases,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "battery.yaml", runs[0].Battery)
	assert.True(t, runs[0].StartedAt.Equal(started))
	assert.Equal(t, 1, runs[0].Passed)
	assert.Equal(t, 1, runs[0].Failed)

	got, err := s.Cases(ctx, id)
	require.NoError(t, err)
	if diff := cmp.Diff(cases, got); diff != "" {
		t.Fatalf("cases mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RecentOrderAndLimit(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	base := time.UnixMilli(1_700_000_000_000)
	var ids []string
	for i := 0; i < 5; i++ {
		id, err := s.Record(ctx, Run{Battery: "b", StartedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, ids[4], runs[0].ID)
	assert.Equal(t, ids[3], runs[1].ID)
	assert.Equal(t, ids[2], runs[2].ID)
}

func TestStore_Prune(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	base := time.UnixMilli(1_700_000_000_000)
	var oldest string
	for i := 0; i < 4; i++ {
		id, err := s.Record(ctx, Run{
			Battery:   "b",
			StartedAt: base.Add(time.Duration(i) * time.Second),
			Cases:     []CaseResult{{CaseID: "c", Problem: "mex", Success: true}},
		})
		require.NoError(t, err)
		if i == 0 {
			oldest = id
		}
	}

	n, err := s.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	cases, err := s.Cases(ctx, oldest)
	require.NoError(t, err)
	assert.Empty(t, cases, "pruned run cases must be removed")
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), Run{Battery: "b"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())

	runs, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.False(t, runs[0].StartedAt.IsZero())
}
