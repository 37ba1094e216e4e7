package store

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	meph "github.com/trimeph/gomeph"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
	}{
		{"", SQLiteBackend},
		{"sqlite", SQLiteBackend},
		{"MySQL", MySQLBackend},
		{"postgres", PostgreSQLBackend},
		{"postgresql", PostgreSQLBackend},
		{"none", NoneBackend},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseBackend("oracle")
	assert.Error(t, err)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", placeholders(SQLiteBackend, 3))
	assert.Equal(t, "?", placeholders(MySQLBackend, 1))
	assert.Equal(t, "$1, $2, $3", placeholders(PostgreSQLBackend, 3))
}

func TestNoneBackend(t *testing.T) {
	s, err := Open(NoneBackend, "")
	require.NoError(t, err)
	require.NoError(t, s.SaveRun(context.Background(), Run{ID: "x"}, nil))
	runs, err := s.Runs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.NoError(t, s.Close())
}

func TestMySQLBadDSN(t *testing.T) {
	_, err := Open(MySQLBackend, "not a dsn")
	assert.Error(t, err)
}

func TestSQLiteRoundTrip(t *testing.T) {
	R := meph.NewRunState(log.New(io.Discard, "", 0))
	require.NoError(t, R.Process(&meph.Input{
		Metadata:      []string{"../test/fe_phonopy.yaml"},
		Displacements: []string{"../test/fe_thermal_displacements.yaml"},
		WorkDir:       t.TempDir(),
	}))
	run, samples, err := NewRecord(R)
	require.NoError(t, err)
	_, err = uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.Equal(t, "single", run.Mode)
	assert.Equal(t, 1, run.Natom)
	assert.Equal(t, 3, run.Nsamples)
	require.Len(t, samples, 3)

	ctx := context.Background()
	s, err := Open(SQLiteBackend, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, SQLiteBackend, s.Backend())
	require.NoError(t, s.SaveRun(ctx, run, samples))

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.True(t, run.CreatedAt.Equal(runs[0].CreatedAt))
	assert.Equal(t, run.Nsamples, runs[0].Nsamples)

	got, err := s.Samples(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, samples, got)

	//the same run can't be archived twice.
	assert.Error(t, s.SaveRun(ctx, run, samples))
	got, err = s.Samples(ctx, run.ID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestNewRecordEmpty(t *testing.T) {
	_, _, err := NewRecord(meph.NewRunState(nil))
	assert.Error(t, err)
}
