package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/news-forum-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	calls   []string
	version uint
	target  uint
	dir     string
	closed  bool
	err     error
}

func (f *fakeMigrator) RunMigrations(path string) error {
	f.calls = append(f.calls, "up")
	f.dir = path
	return f.err
}

func (f *fakeMigrator) MigrateDown(path string) error {
	f.calls = append(f.calls, "down")
	f.dir = path
	return f.err
}

func (f *fakeMigrator) MigrateToVersion(path string, version uint) error {
	f.calls = append(f.calls, "goto")
	f.dir = path
	f.target = version
	return f.err
}

func (f *fakeMigrator) MigrationVersion(path string) (uint, bool, error) {
	f.calls = append(f.calls, "version")
	f.dir = path
	return f.version, false, f.err
}

func (f *fakeMigrator) Close() error {
	f.closed = true
	return nil
}

func run(t *testing.T, fake *fakeMigrator, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MIGRATIONS_PATH", "/srv/migrations")

	cmd := newRootCmd(func(cfg *config.DatabaseConfig, log zerolog.Logger) (migrator, error) {
		return fake, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUp(t *testing.T) {
	fake := &fakeMigrator{}
	_, err := run(t, fake, "up")
	require.NoError(t, err)
	assert.Equal(t, []string{"up"}, fake.calls)
	assert.Equal(t, "/srv/migrations", fake.dir)
	assert.True(t, fake.closed)
}

func TestDownWithPathFlag(t *testing.T) {
	fake := &fakeMigrator{}
	_, err := run(t, fake, "down", "--path", "./other")
	require.NoError(t, err)
	assert.Equal(t, []string{"down"}, fake.calls)
	assert.Equal(t, "./other", fake.dir)
}

func TestGoto(t *testing.T) {
	fake := &fakeMigrator{}
	_, err := run(t, fake, "goto", "3")
	require.NoError(t, err)
	assert.Equal(t, uint(3), fake.target)

	fake = &fakeMigrator{}
	_, err = run(t, fake, "goto", "three")
	assert.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestVersion(t *testing.T) {
	fake := &fakeMigrator{version: 1}
	out, err := run(t, fake, "version")
	require.NoError(t, err)
	assert.Equal(t, "version=1 dirty=false\n", out)
}

func TestErrorsPropagate(t *testing.T) {
	fake := &fakeMigrator{err: errors.New("dirty database")}
	_, err := run(t, fake, "up")
	assert.EqualError(t, err, "dirty database")
	assert.True(t, fake.closed)
}
