package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

func testCapture(n int) *Capture {
	density := 60
	eng := engine.New(engine.Options{
		Pattern: 3,
		Density: &density,
		Source:  patterns.NewSource(9, func() uint32 { return 2 }),
	})
	return Record(eng, n, 100*time.Millisecond)
}

func TestRecord(t *testing.T) {
	c := testCapture(4)
	if c.Meta.Pattern != "mirror" || c.Meta.Density != 60 || c.Meta.Frames != 4 {
		t.Errorf("meta = %+v", c.Meta)
	}
	for i, smp := range c.Samples {
		if smp.Frame != uint32(i+1) {
			t.Errorf("sample %d frame = %d", i, smp.Frame)
		}
		if smp.Symmetry != 1 {
			t.Errorf("mirror sample %d symmetry = %v, want 1", i, smp.Symmetry)
		}
	}
	for _, name := range []string{"coverage", "symmetry", "flicker"} {
		if _, ok := c.Meta.Metrics[name]; !ok {
			t.Errorf("missing metric %q", name)
		}
	}
}

func TestRecordStopsOnTerminate(t *testing.T) {
	eng := engine.New(engine.Options{})
	eng.Controller.Handle(engine.Pressed(engine.Terminate))
	if c := Record(eng, 10, time.Second); len(c.Samples) != 0 {
		t.Errorf("recorded %d samples after terminate", len(c.Samples))
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	c := testCapture(3)
	id, err := st.Save(c)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" || c.Meta.ID != id {
		t.Errorf("id = %q, meta id = %q", id, c.Meta.ID)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Pattern != "mirror" || meta.Frames != 3 || meta.Tick != "100ms" {
		t.Errorf("meta = %+v", meta)
	}

	samples, err := st.LoadSamples(id)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if diff := cmp.Diff(c.Samples, samples); diff != "" {
		t.Errorf("samples mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	caps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(caps) != 0 {
		t.Errorf("expected 0 captures, got %d", len(caps))
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save(testCapture(1)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	// stray files are ignored
	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644)
	os.MkdirAll(filepath.Join(tmpDir, "broken"), 0755)

	caps, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(caps) != 2 {
		t.Fatalf("expected 2 captures, got %d", len(caps))
	}
	if caps[0].Timestamp.Before(caps[1].Timestamp) {
		t.Error("captures not sorted newest first")
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	id, err := st.Save(testCapture(2))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metadataFile, framesFile} {
		if _, err := os.Stat(filepath.Join(tmpDir, id, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load err = %v, want ErrNotFound", err)
	}
	if _, err := st.LoadSamples("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSamples err = %v, want ErrNotFound", err)
	}
}

func TestSeries(t *testing.T) {
	samples := []Sample{{Coverage: 0.1, Symmetry: 1, Density: 20}, {Coverage: 0.3, Symmetry: 0.5, Density: 30}}
	got, err := Series(samples, "coverage")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.1, 0.3}, got); diff != "" {
		t.Errorf("coverage series (-want +got):\n%s", diff)
	}
	if _, err := Series(samples, "energy"); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestWriteJSON(t *testing.T) {
	c := testCapture(2)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, c); err != nil {
		t.Fatal(err)
	}
	var got Capture
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Samples) != 2 || got.Meta.Pattern != "mirror" {
		t.Errorf("decoded = %+v", got.Meta)
	}
}
