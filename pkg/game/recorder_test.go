package game

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir, "abc", nil)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(rec.Path()), "game_abc_") {
		t.Errorf("unexpected file name %s", rec.Path())
	}

	g := NewGame(WithSeed(3))
	s := NewSession(g, WithClock(newManualClock()), WithRecorder(rec))
	s.publish("init")
	s.handle(Command{Kind: CmdStart})
	s.handle(Steer(Down))
	s.step()

	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	// Records after close are ignored
	rec.RecordStep(StepRecord{Seq: 99})

	records, err := LoadRecords(rec.Path())
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}

	wantEvents := []string{"init", "start", "direction", "tick"}
	if len(records) != len(wantEvents) {
		t.Fatalf("got %d records, want %d", len(records), len(wantEvents))
	}
	for i, r := range records {
		if r.Event != wantEvents[i] || r.Seq != i+1 {
			t.Errorf("record %d = %s/%d, want %s/%d", i, r.Event, r.Seq, wantEvents[i], i+1)
		}
	}
	last := records[len(records)-1].State
	if last.Phase != Running || last.Direction != Down || last.Ticks != 1 {
		t.Errorf("last state = %+v", last)
	}
	if rec.Dropped() != 0 {
		t.Errorf("dropped = %d, want 0", rec.Dropped())
	}
}

func TestReadRecordsRejectsGarbage(t *testing.T) {
	src := strings.NewReader(`{"seq":1,"event":"init","state":{"phase":"not_started"}}` + "\n" + `{not json`)
	records, err := ReadRecords(src)
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if len(records) != 1 || records[0].State.Phase != NotStarted {
		t.Errorf("records before the error = %+v", records)
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	if _, err := LoadRecords(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRecorderDropsWhenFull(t *testing.T) {
	r := &GameRecorder{recordChan: make(chan StepRecord, 1)}
	r.RecordStep(StepRecord{Seq: 1, Time: time.Now()})
	r.RecordStep(StepRecord{Seq: 2, Time: time.Now()})
	if r.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", r.Dropped())
	}
}
