package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tasklist/internal/config"
	apperrors "tasklist/internal/errors"
	"tasklist/internal/storage"
	"tasklist/internal/store"
)

var testEpoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// testEnv runs tl commands against one shared in-memory storage, so state
// carries over between invocations the way it would on disk.
type testEnv struct {
	t       *testing.T
	storage storage.Storage
	ids     int
	clock   time.Time
	config  *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"TL_CONFIG", "TL_DEBUG", "TL_DISPLAY_FILTER", "TL_DISPLAY_OLDEST_FIRST", "TL_DISPLAY_RELATIVE", "TL_VALIDATION_TEXT_MAX", "TL_STORAGE_KEY", "TL_EXPORT_PDF_FONT"} {
		t.Setenv(key, "")
	}

	original := timeNow
	timeNow = func() time.Time { return testEpoch.Add(time.Hour) }
	t.Cleanup(func() { timeNow = original })

	return &testEnv{t: t, storage: storage.NewMemory(), clock: testEpoch}
}

func (e *testEnv) factory(cfg *config.Config) (*App, error) {
	e.config = cfg
	return NewApp(context.Background(), cfg, e.storage, nil,
		store.WithIDGenerator(func() string {
			e.ids++
			return fmt.Sprintf("%08d-0000-4000-8000-000000000000", e.ids)
		}),
		store.WithClock(func() time.Time {
			e.clock = e.clock.Add(time.Minute)
			return e.clock
		}),
	), nil
}

// run executes tl with args and returns stdout, stderr and the error.
func (e *testEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(e.factory)
	root.cmd.SetOut(&out)
	root.cmd.SetErr(&errOut)
	root.cmd.SetArgs(append([]string{"--storage-driver", "memory"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// mustRun executes tl with args and fails the test on error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, _, err := e.run(args...)
	require.NoError(e.t, err)
	return out
}

// readOnlyStorage serves reads and rejects every write.
type readOnlyStorage struct {
	*storage.Memory
}

func newReadOnlyStorage() storage.Storage {
	return readOnlyStorage{storage.NewMemory()}
}

func (readOnlyStorage) Put(ctx context.Context, key string, value []byte) error {
	return apperrors.NewSlotError("write slot", key, fmt.Errorf("read-only file system"))
}
