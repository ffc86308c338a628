package notify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/WaterKat/CGOL-Widget/internal/config"
	"github.com/WaterKat/CGOL-Widget/internal/pattern"
	"github.com/WaterKat/CGOL-Widget/internal/widget"
)

func testState(t *testing.T, patterns *pattern.Table) *widget.State {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Width = 6
	cfg.Grid.Height = 5
	cfg.Grid.Seed = 11
	cfg.Grid.SeedDensity = 1
	cfg.Grid.RandomizeOnCreate = false
	cfg.Notify.Rows = 2
	cfg.Notify.QueueSize = 2
	s, err := widget.New(cfg, zap.NewNop(), patterns)
	if err != nil {
		t.Fatalf("widget.New: %v", err)
	}
	// Keep the board still so assertions see the raw seeded cells.
	s.TogglePause()
	return s
}

func dotTable(t *testing.T) *pattern.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	body := "patterns:\n  - name: dot\n    cells: [\"#\"]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	tbl, err := pattern.LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	return tbl
}

func TestNotifyQueuesSeedRequest(t *testing.T) {
	s := testState(t, nil)
	h := &Widget{state: s, log: zap.NewNop()}

	var res NotifyResponse
	if err := h.Notify(NotifyRequest{Source: "test"}, &res); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if !res.Accepted {
		t.Fatal("request on an empty queue should be accepted")
	}

	s.Tick(time.Unix(1000, 0))
	if s.Alive() != 12 {
		t.Fatalf("alive after seeding = %d, want 12", s.Alive())
	}
}

func TestNotifyHonorsRowOverride(t *testing.T) {
	s := testState(t, nil)
	h := &Widget{state: s, log: zap.NewNop()}

	var res NotifyResponse
	if err := h.Notify(NotifyRequest{Source: "test", Rows: 1}, &res); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	s.Tick(time.Unix(1000, 0))
	if s.Alive() != 6 {
		t.Fatalf("alive = %d, want a single row of 6", s.Alive())
	}
}

func TestNotifyRejectsBadRequests(t *testing.T) {
	s := testState(t, dotTable(t))
	h := &Widget{state: s, log: zap.NewNop()}

	var res NotifyResponse
	err := h.Notify(NotifyRequest{Source: "test", Rows: -1}, &res)
	if err == nil || !strings.Contains(err.Error(), "rows") {
		t.Fatalf("negative rows error = %v", err)
	}

	err = h.Notify(NotifyRequest{Source: "test", Pattern: "toad"}, &res)
	if err == nil || !strings.Contains(err.Error(), "unknown pattern") {
		t.Fatalf("unknown pattern error = %v", err)
	}

	// A loaded pattern passes validation.
	if err := h.Notify(NotifyRequest{Source: "test", Pattern: "dot"}, &res); err != nil {
		t.Fatalf("known pattern rejected: %v", err)
	}
	if !res.Accepted {
		t.Fatal("known pattern should queue")
	}
}

func TestNotifyRejectsPatternsWithoutTable(t *testing.T) {
	s := testState(t, nil)
	h := &Widget{state: s, log: zap.NewNop()}

	var res NotifyResponse
	if err := h.Notify(NotifyRequest{Source: "test", Pattern: "dot"}, &res); err == nil {
		t.Fatal("pattern request without a loaded table should fail")
	}
}

func TestNotifyReportsDropsWhenFull(t *testing.T) {
	s := testState(t, nil)
	h := &Widget{state: s, log: zap.NewNop()}

	var res NotifyResponse
	h.Notify(NotifyRequest{Source: "a"}, &res)
	h.Notify(NotifyRequest{Source: "b"}, &res)
	if err := h.Notify(NotifyRequest{Source: "c"}, &res); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if res.Accepted {
		t.Fatal("request past the queue size should report a drop")
	}
}

func TestStateReportsBoardShape(t *testing.T) {
	s := testState(t, nil)
	h := &Widget{state: s, log: zap.NewNop()}

	var res StateResponse
	if err := h.State(StateRequest{}, &res); err != nil {
		t.Fatalf("State: %v", err)
	}
	if res.Width != 6 || res.Height != 5 {
		t.Fatalf("reported %dx%d, want 6x5", res.Width, res.Height)
	}
	if res.Alive != 0 || res.Generation != 0 {
		t.Fatalf("fresh board counters = %d alive, generation %d", res.Alive, res.Generation)
	}
}

func TestClearQueuesWipe(t *testing.T) {
	s := testState(t, nil)
	h := &Widget{state: s, log: zap.NewNop()}

	var nres NotifyResponse
	h.Notify(NotifyRequest{Source: "test"}, &nres)
	s.Tick(time.Unix(1000, 0))
	if s.Alive() == 0 {
		t.Fatal("seeding should add cells before the clear")
	}

	var cres ClearResponse
	if err := h.Clear(ClearRequest{Source: "test"}, &cres); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !cres.Accepted {
		t.Fatal("clear on an empty queue should be accepted")
	}
	s.Tick(time.Unix(1001, 0))
	if s.Alive() != 0 {
		t.Fatalf("alive after clear = %d, want 0", s.Alive())
	}
	for i, c := range s.Cells() {
		if c != 0 {
			t.Fatalf("cell %d survived the clear", i)
		}
	}
}

func TestClientRoundTrip(t *testing.T) {
	s := testState(t, nil)
	srv, err := NewServer("127.0.0.1:0", s, zap.NewNop())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	defer srv.Close()
	go srv.Serve()

	client, err := Dial(srv.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	nres, err := client.Notify("round-trip", "", 0)
	if err != nil {
		t.Fatalf("client.Notify: %v", err)
	}
	if !nres.Accepted {
		t.Fatal("notify should be accepted")
	}

	s.Tick(time.Unix(1000, 0))

	sres, err := client.State()
	if err != nil {
		t.Fatalf("client.State: %v", err)
	}
	if sres.Alive != 12 {
		t.Fatalf("state alive = %d, want 12", sres.Alive)
	}

	cres, err := client.Clear("round-trip")
	if err != nil {
		t.Fatalf("client.Clear: %v", err)
	}
	if !cres.Accepted {
		t.Fatal("clear should be accepted")
	}
	s.Tick(time.Unix(1001, 0))
	if s.Alive() != 0 {
		t.Fatalf("alive after clear = %d, want 0", s.Alive())
	}
}
