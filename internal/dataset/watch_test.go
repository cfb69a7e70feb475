package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	if err := os.WriteFile(file, []byte(`{"places": [], "region": [1, 2, 3, 4]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Dataset, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, file, discardLogger(), func(ds Dataset) { changes <- ds })
	}()

	// Give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(file, []byte(cloudGateJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ds := <-changes:
		if len(ds.Places) != 1 || ds.Places[0].Name != "Cloud Gate" {
			t.Errorf("reloaded dataset = %+v, want Cloud Gate", ds.Places)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_SkipsUndecodableWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	if err := os.WriteFile(file, []byte(cloudGateJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Dataset, 4)
	go func() {
		_ = Watch(ctx, file, discardLogger(), func(ds Dataset) { changes <- ds })
	}()

	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(file, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ds := <-changes:
		t.Errorf("unexpected reload with %d places", len(ds.Places))
	case <-time.After(700 * time.Millisecond):
	}
}

func TestReloader_Serializes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(file, []byte(cloudGateJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	var active, maxActive, calls atomic.Int32
	r := &reloader{
		path:   file,
		logger: discardLogger(),
		onChange: func(Dataset) {
			n := active.Add(1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			active.Add(-1)
			calls.Add(1)
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.reload(context.Background())
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 5 {
		t.Errorf("onChange called %d times, want 5", got)
	}
	if got := maxActive.Load(); got != 1 {
		t.Errorf("max concurrent reloads = %d, want 1", got)
	}
}
