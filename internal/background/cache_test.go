package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/prosport1/ProSport/internal/storage"
	perrors "github.com/prosport1/ProSport/pkg/errors"
)

type countingStore struct {
	mu          sync.Mutex
	inner       *storage.MemoryStore
	existsCalls int
	saveCalls   int
	failSave    bool
	failExists  bool
}

func newCountingStore() *countingStore {
	return &countingStore{inner: storage.NewMemoryStore()}
}

func (s *countingStore) Save(ctx context.Context, path string, data []byte, opts storage.SaveOptions) error {
	s.mu.Lock()
	s.saveCalls++
	fail := s.failSave
	s.mu.Unlock()
	if fail {
		return fmt.Errorf("storage unavailable")
	}
	return s.inner.Save(ctx, path, data, opts)
}

func (s *countingStore) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	s.existsCalls++
	fail := s.failExists
	s.mu.Unlock()
	if fail {
		return false, fmt.Errorf("storage unavailable")
	}
	return s.inner.Exists(ctx, path)
}

func (s *countingStore) MakePublic(ctx context.Context, path string) error {
	return s.inner.MakePublic(ctx, path)
}

func (s *countingStore) PublicURL(path string) string {
	return s.inner.PublicURL(path)
}

type fakeImageGen struct {
	mu    sync.Mutex
	calls int
	data  []byte
	err   error
}

func (f *fakeImageGen) GenerateImage(_ context.Context, _ string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.data, f.err
}

func (f *fakeImageGen) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestEnsureGeneratesOncePerSlug(t *testing.T) {
	store := newCountingStore()
	images := &fakeImageGen{data: []byte("jpeg-bytes")}
	cache := NewCache(store, images, nil, zap.NewNop())

	first := cache.Ensure(context.Background(), "Jiu-Jitsu")
	if first == "" {
		t.Fatal("first call should return a URL")
	}
	if images.callCount() != 1 {
		t.Fatalf("expected one generation call, got %d", images.callCount())
	}

	second := cache.Ensure(context.Background(), "jiu jitsu!!")
	if second != first {
		t.Errorf("equivalent sport spellings must resolve to the same URL: %q vs %q", first, second)
	}
	if images.callCount() != 1 {
		t.Errorf("second call must not invoke the image model, got %d calls", images.callCount())
	}
}

func TestEnsureStoresImmutableJPEG(t *testing.T) {
	store := newCountingStore()
	images := &fakeImageGen{data: []byte("jpeg-bytes")}
	cache := NewCache(store, images, nil, zap.NewNop())

	url := cache.Ensure(context.Background(), "Surf")
	if url == "" {
		t.Fatal("expected a URL")
	}
	if store.inner.Object("backgrounds/surf.jpg") == nil {
		t.Error("blob not stored at the deterministic path")
	}
	if !store.inner.IsPublic("backgrounds/surf.jpg") {
		t.Error("blob must be made publicly readable")
	}
}

func TestEnsureNeverFails(t *testing.T) {
	ctx := context.Background()

	t.Run("no image generator", func(t *testing.T) {
		cache := NewCache(newCountingStore(), nil, nil, zap.NewNop())
		if url := cache.Ensure(ctx, "Surf"); url != "" {
			t.Errorf("expected empty URL, got %q", url)
		}
	})

	t.Run("generation error", func(t *testing.T) {
		images := &fakeImageGen{err: fmt.Errorf("model down")}
		cache := NewCache(newCountingStore(), images, nil, zap.NewNop())
		if url := cache.Ensure(ctx, "Surf"); url != "" {
			t.Errorf("expected empty URL, got %q", url)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		images := &fakeImageGen{data: nil}
		cache := NewCache(newCountingStore(), images, nil, zap.NewNop())
		if url := cache.Ensure(ctx, "Surf"); url != "" {
			t.Errorf("expected empty URL, got %q", url)
		}
	})

	t.Run("save failure", func(t *testing.T) {
		store := newCountingStore()
		store.failSave = true
		images := &fakeImageGen{data: []byte("jpeg-bytes")}
		cache := NewCache(store, images, nil, zap.NewNop())
		if url := cache.Ensure(ctx, "Surf"); url != "" {
			t.Errorf("expected empty URL, got %q", url)
		}
	})

	t.Run("existence check failure", func(t *testing.T) {
		store := newCountingStore()
		store.failExists = true
		images := &fakeImageGen{data: []byte("jpeg-bytes")}
		cache := NewCache(store, images, nil, zap.NewNop())
		if url := cache.Ensure(ctx, "Surf"); url != "" {
			t.Errorf("expected empty URL, got %q", url)
		}
		if images.callCount() != 0 {
			t.Error("must not generate when existence cannot be checked")
		}
	})
}

// deniedLocker simulates losing the per-slug race to a concurrent request.
type deniedLocker struct{}

func (deniedLocker) acquire(context.Context, string) (func(), bool) {
	return nil, false
}

func TestEnsureLockLoserWaitsForWinnersBlob(t *testing.T) {
	store := newCountingStore()
	images := &fakeImageGen{data: []byte("jpeg-bytes")}
	cache := NewCache(store, images, nil, zap.NewNop())
	cache.locks = deniedLocker{}
	cache.pollStep = 5 * time.Millisecond
	cache.pollMax = 2 * time.Second

	// The winner finishes its upload while the loser is polling.
	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = store.inner.Save(context.Background(), "backgrounds/surf.jpg", []byte("winner"), storage.SaveOptions{})
		_ = store.inner.MakePublic(context.Background(), "backgrounds/surf.jpg")
	}()

	url := cache.Ensure(context.Background(), "Surf")
	if want := store.inner.PublicURL("backgrounds/surf.jpg"); url != want {
		t.Errorf("loser URL = %q, want winner's %q", url, want)
	}
	if images.callCount() != 0 {
		t.Error("lock loser must not invoke the image model")
	}
}

func TestEnsureLockLoserTimesOut(t *testing.T) {
	store := newCountingStore()
	images := &fakeImageGen{data: []byte("jpeg-bytes")}
	cache := NewCache(store, images, nil, zap.NewNop())
	cache.locks = deniedLocker{}
	cache.pollStep = 5 * time.Millisecond
	cache.pollMax = 30 * time.Millisecond

	if url := cache.Ensure(context.Background(), "Surf"); url != "" {
		t.Errorf("expected empty URL when the winner never finishes, got %q", url)
	}
	if images.callCount() != 0 {
		t.Error("lock loser must not invoke the image model")
	}
}

func TestWithoutRedisLockIsAlwaysGranted(t *testing.T) {
	cache := NewCache(newCountingStore(), nil, nil, zap.NewNop())
	release, acquired := cache.locks.acquire(context.Background(), "surf")
	if !acquired {
		t.Fatal("lock must be granted when Redis is not configured")
	}
	release()
}

func loggedErrorAs(logs *observer.ObservedLogs, target any) bool {
	for _, entry := range logs.All() {
		for _, field := range entry.Context {
			if field.Type != zapcore.ErrorType {
				continue
			}
			if err, ok := field.Interface.(error); ok && errors.As(err, target) {
				return true
			}
		}
	}
	return false
}

func TestEnsureFailuresLogTypedErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("existence check failure", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		store := newCountingStore()
		store.failExists = true
		cache := NewCache(store, &fakeImageGen{data: []byte("jpeg-bytes")}, nil, zap.New(core))

		cache.Ensure(ctx, "Surf")

		var cacheErr *perrors.CacheError
		if !loggedErrorAs(logs, &cacheErr) {
			t.Error("existence check failure must log a cache error")
		}
	})

	t.Run("generation failure", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		images := &fakeImageGen{err: fmt.Errorf("model down")}
		cache := NewCache(newCountingStore(), images, nil, zap.New(core))

		cache.Ensure(ctx, "Surf")

		var upErr *perrors.UpstreamError
		if !loggedErrorAs(logs, &upErr) {
			t.Error("image generation failure must log an upstream error")
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		store := newCountingStore()
		store.failSave = true
		cache := NewCache(store, &fakeImageGen{data: []byte("jpeg-bytes")}, nil, zap.New(core))

		cache.Ensure(ctx, "Surf")

		var cacheErr *perrors.CacheError
		if !loggedErrorAs(logs, &cacheErr) {
			t.Error("upload failure must log a cache error")
		}
	})
}

func TestEnsureEmptySportUsesDefaultSlug(t *testing.T) {
	store := newCountingStore()
	images := &fakeImageGen{data: []byte("jpeg-bytes")}
	cache := NewCache(store, images, nil, zap.NewNop())

	url := cache.Ensure(context.Background(), "")
	if url == "" {
		t.Fatal("expected a URL")
	}
	if store.inner.Object("backgrounds/bg.jpg") == nil {
		t.Error("empty sport must fall back to the bg slug path")
	}
}
