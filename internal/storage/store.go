package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/tipatlas/internal/analysis"
)

// Run kinds stored under the data directory.
const (
	KindSweep  = "sweep"
	KindSignal = "signal"
)

// Store persists runs as one directory per run containing metadata.json and
// points.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// SaveSweep persists a bifurcation point cloud and returns the run ID.
func (s *Store) SaveSweep(cfg analysis.SweepConfig, res *analysis.SweepResult) (string, error) {
	meta := RunMetadata{
		Kind:      KindSweep,
		Timestamp: time.Now(),
		Params: map[string]float64{
			"r_min":      cfg.RMin,
			"r_max":      cfg.RMax,
			"steps":      float64(cfg.Steps),
			"seed":       cfg.X0,
			"iterations": float64(cfg.Iterations),
			"keep":       float64(cfg.Keep),
		},
		Metrics: map[string]float64{
			"points": float64(res.Len()),
		},
	}

	rows := make([][]string, res.Len())
	for i := range res.R {
		rows[i] = []string{
			strconv.FormatFloat(res.R[i], 'f', 6, 64),
			strconv.FormatFloat(res.X[i], 'f', 6, 64),
		}
	}

	return s.save(meta, []string{"r", "x"}, rows)
}

// SaveSignal persists a trajectory with its early-warning series. Rows past
// the end of the rolling series leave those columns empty.
func (s *Store) SaveSignal(cfg analysis.SignalConfig, res *analysis.SignalResult) (string, error) {
	meta := RunMetadata{
		Kind:      KindSignal,
		Timestamp: time.Now(),
		Params: map[string]float64{
			"r":          cfg.R,
			"seed":       cfg.X0,
			"length":     float64(cfg.Length),
			"window":     float64(cfg.Window),
			"noise":      cfg.Noise,
			"noise_seed": float64(cfg.NoiseSeed),
		},
		Metrics: map[string]float64{
			"autocorr_lag1": res.AutocorrLag1,
			"variance":      res.TotalVariance,
		},
	}

	rows := make([][]string, len(res.Trajectory))
	for i, x := range res.Trajectory {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(x, 'f', 6, 64),
			"", "",
		}
		if i < len(res.Autocorr) {
			row[2] = strconv.FormatFloat(res.Autocorr[i], 'f', 6, 64)
			row[3] = strconv.FormatFloat(res.Variance[i], 'f', 6, 64)
		}
		rows[i] = row
	}

	return s.save(meta, []string{"t", "x", "autocorr", "variance"}, rows)
}

func (s *Store) save(meta RunMetadata, header []string, rows [][]string) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Kind, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	meta.ID = runID

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip malformed run dirs
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads a run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPoints reads a run's point table. Empty cells come back as NaN.
func (s *Store) LoadPoints(runID string) ([]string, [][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("storage: run %s has no point data", runID)
	}

	header := records[0]
	points := make([][]float64, len(records)-1)
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			if cell == "" {
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: run %s row %d: %w", runID, i+1, err)
			}
			row[j] = v
		}
		points[i] = row
	}
	return header, points, nil
}
