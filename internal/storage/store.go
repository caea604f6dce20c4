package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var ErrNotFound = errors.New("storage: capture not found")

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var framesHeader = []string{"frame", "pattern", "density", "coverage", "symmetry"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type CaptureMetadata struct {
	ID        string             `json:"id"`
	Pattern   string             `json:"pattern"`
	Density   int                `json:"density"`
	Frames    int                `json:"frames"`
	Tick      string             `json:"tick"`
	Script    string             `json:"script,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Sample is the per-frame record written to frames.csv.
type Sample struct {
	Frame    uint32  `json:"frame"`
	Pattern  string  `json:"pattern"`
	Density  int     `json:"density"`
	Coverage float64 `json:"coverage"`
	Symmetry float64 `json:"symmetry"`
}

type Capture struct {
	Meta    CaptureMetadata `json:"meta"`
	Samples []Sample        `json:"samples"`
}

// Save writes c under a new capture ID and returns the ID.
func (s *Store) Save(c *Capture) (string, error) {
	now := time.Now()
	id := fmt.Sprintf("%s_%d", c.Meta.Pattern, now.UnixNano())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := c.Meta
	meta.ID = id
	meta.Timestamp = now
	meta.Frames = len(c.Samples)

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(framesHeader); err != nil {
		return "", err
	}
	for _, smp := range c.Samples {
		row := []string{
			strconv.FormatUint(uint64(smp.Frame), 10),
			smp.Pattern,
			strconv.Itoa(smp.Density),
			strconv.FormatFloat(smp.Coverage, 'g', -1, 64),
			strconv.FormatFloat(smp.Symmetry, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	c.Meta = meta
	return id, nil
}

// List returns the stored captures, newest first. Unreadable entries are
// skipped.
func (s *Store) List() ([]CaptureMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []CaptureMetadata{}, nil
		}
		return nil, err
	}

	caps := make([]CaptureMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		caps = append(caps, *meta)
	}
	sort.Slice(caps, func(i, j int) bool {
		return caps[i].Timestamp.After(caps[j].Timestamp)
	})
	return caps, nil
}

func (s *Store) Load(id string) (*CaptureMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta CaptureMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", id, err)
	}
	return &meta, nil
}

// LoadSamples reads the per-frame records of a capture. Malformed rows are
// skipped.
func (s *Store) LoadSamples(id string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, framesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(framesHeader) {
			continue
		}
		frame, err1 := strconv.ParseUint(rec[0], 10, 32)
		density, err2 := strconv.Atoi(rec[2])
		coverage, err3 := strconv.ParseFloat(rec[3], 64)
		symmetry, err4 := strconv.ParseFloat(rec[4], 64)
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			continue
		}
		samples = append(samples, Sample{
			Frame:    uint32(frame),
			Pattern:  rec[1],
			Density:  density,
			Coverage: coverage,
			Symmetry: symmetry,
		})
	}
	return samples, nil
}

// Series extracts one column of samples by name ("coverage" or "symmetry").
func Series(samples []Sample, column string) ([]float64, error) {
	out := make([]float64, len(samples))
	for i, smp := range samples {
		switch column {
		case "coverage":
			out[i] = smp.Coverage
		case "symmetry":
			out[i] = smp.Symmetry
		case "density":
			out[i] = float64(smp.Density)
		default:
			return nil, fmt.Errorf("storage: unknown column %q", column)
		}
	}
	return out, nil
}
