package zwiftstate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate"
)

func mkdirAll(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestInit_ResolvesUserDataPaths(t *testing.T) {
	docs := t.TempDir()
	logDir := filepath.Join(docs, "Zwift", "Logs")
	writeFile(t, mkdirAll(t, logDir), "Log.txt",
		"[10:00:01] NETCLIENT:[INFO] Player ID: 42\n")

	calls := 0
	m := zwiftstate.New(
		zwiftstate.WithDocumentsDirFunc(func(ctx context.Context) (string, error) {
			calls++
			return docs, nil
		}),
	)

	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	id, ok := m.PlayerID(context.Background())
	if !ok || id != 42 {
		t.Errorf("PlayerID() = %d, %v; want 42, true", id, ok)
	}
	if calls != 1 {
		t.Errorf("documents resolver called %d times, want 1", calls)
	}
}

func TestInit_ResolverCalledAtMostOnce(t *testing.T) {
	calls := 0
	m := zwiftstate.New(
		zwiftstate.WithDocumentsDirFunc(func(ctx context.Context) (string, error) {
			calls++
			return t.TempDir(), nil
		}),
	)

	for i := 0; i < 3; i++ {
		if err := m.Init(context.Background()); err != nil {
			t.Fatalf("Init() #%d error = %v", i+1, err)
		}
	}

	if calls != 1 {
		t.Errorf("documents resolver called %d times, want 1", calls)
	}
}

func TestInit_NoOpWhenPathsConfigured(t *testing.T) {
	m := zwiftstate.New(
		zwiftstate.WithLogFile("/tmp/Log.txt"),
		zwiftstate.WithPrefsFile("/tmp/prefs.xml"),
		zwiftstate.WithDocumentsDirFunc(func(ctx context.Context) (string, error) {
			t.Error("documents resolver called despite configured paths")
			return "", nil
		}),
	)

	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
}

func TestInit_PropagatesResolverError(t *testing.T) {
	resolverErr := errors.New("shell folder lookup failed")
	m := zwiftstate.New(
		zwiftstate.WithDocumentsDirFunc(func(ctx context.Context) (string, error) {
			return "", resolverErr
		}),
	)

	if err := m.Init(context.Background()); !errors.Is(err, resolverErr) {
		t.Errorf("Init() error = %v, want %v", err, resolverErr)
	}
}

func TestCloseProcess_NoOp(t *testing.T) {
	m := zwiftstate.New()
	if err := m.CloseProcess(); err != nil {
		t.Errorf("CloseProcess() error = %v, want nil", err)
	}
}
