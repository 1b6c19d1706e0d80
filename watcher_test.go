package fsresult

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvens/fsresult/host"
)

func waitForEvent(t *testing.T, w *Watcher, match func(Event) bool) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			require.True(t, ok, "events closed")
			if match(ev) {
				return ev
			}
		case ce := <-w.Errors():
			t.Fatalf("watch error: %v", ce)
		case <-timeout:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fsys := New()

	r := fsys.Watch(dir, WatchOptions{})
	require.True(t, r.IsOk())
	w := r.MustGet()

	name := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))

	ev := waitForEvent(t, w, func(ev Event) bool {
		return ev.Path == name && ev.Op.Has(Create)
	})
	assert.Equal(t, name, ev.Path)

	assert.True(t, w.Close().IsOk())
	assert.True(t, w.Close().IsOk())

	_, ok := <-w.Events()
	for ok {
		_, ok = <-w.Events()
	}
}

func TestWatch_Recursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0o755))
	fsys := New()

	w := fsys.Watch(dir, WatchOptions{Recursive: true, Buffer: 16}).MustGet()
	defer w.Close()

	existing := filepath.Join(dir, "a", "f")
	require.NoError(t, os.WriteFile(existing, nil, 0o644))
	waitForEvent(t, w, func(ev Event) bool { return ev.Path == existing })
}

func TestWatch_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	r := New().Watch(missing, WatchOptions{})
	ce := requireKind(t, r.Error(), FileNotFound)
	assert.Equal(t, missing, ce.Path)
}

func TestWatcher_Add(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	fsys := New()

	w := fsys.Watch(dir, WatchOptions{}).MustGet()
	defer w.Close()

	require.True(t, w.Add(other).IsOk())
	requireKind(t, w.Add(filepath.Join(other, "missing")).Error(), FileNotFound)

	name := filepath.Join(other, "f")
	require.NoError(t, os.WriteFile(name, nil, 0o644))
	waitForEvent(t, w, func(ev Event) bool { return ev.Path == name })

	assert.True(t, w.Remove(other).IsOk())
}

func TestWatch_UnreadErrorsDoNotStallEvents(t *testing.T) {
	dir := t.TempDir()
	faulty := host.NewFaulty(nil)
	faulty.FailOp("readdir", "unreadable-", fs.ErrPermission)

	w := New(WithHost(faulty)).Watch(dir, WatchOptions{Recursive: true}).MustGet()
	defer w.Close()

	for _, n := range []string{"unreadable-1", "unreadable-2", "unreadable-3"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, n), 0o755))
	}
	name := filepath.Join(dir, "after.txt")
	require.NoError(t, os.WriteFile(name, nil, 0o644))

	timeout := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case ev, ok := <-w.Events():
			require.True(t, ok, "events closed")
			seen = ev.Path == name
		case <-timeout:
			t.Fatal("timed out waiting for event")
		}
	}

	select {
	case ce := <-w.Errors():
		assert.Equal(t, PermissionDenied, ce.Kind)
		assert.Equal(t, dir, ce.Path)
	default:
		t.Fatal("expected a pending watch error")
	}
}

func TestOp(t *testing.T) {
	op := Create | Write
	assert.True(t, op.Has(Create))
	assert.False(t, op.Has(Remove))
	assert.Equal(t, "CREATE|WRITE", op.String())
}
