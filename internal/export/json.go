package export

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/tipatlas/internal/storage"
)

// ExportData is the JSON payload for a stored run: its metadata plus the
// point table in column order. Cells absent from the stored run, such as the
// tail of a rolling series, are null.
type ExportData struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Params    map[string]float64 `json:"params"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Columns   []string           `json:"columns"`
	Points    [][]*float64       `json:"points"`
	PointRows int                `json:"point_rows"`
}

// JSON writes a run as indented JSON. Non-finite cells become null, mirroring
// the empty cells of the CSV representation; encoding/json rejects NaN
// outright, so signal runs depend on this.
func JSON(w io.Writer, meta *storage.RunMetadata, columns []string, points [][]float64) error {
	rows := make([][]*float64, len(points))
	for i, row := range points {
		cells := make([]*float64, len(row))
		for j := range row {
			if v := row[j]; !math.IsNaN(v) && !math.IsInf(v, 0) {
				cells[j] = &row[j]
			}
		}
		rows[i] = cells
	}

	data := ExportData{
		ID:        meta.ID,
		Kind:      meta.Kind,
		Params:    meta.Params,
		Metrics:   meta.Metrics,
		Columns:   columns,
		Points:    rows,
		PointRows: len(points),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// JSONFile writes a run as indented JSON to path.
func JSONFile(path string, meta *storage.RunMetadata, columns []string, points [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return JSON(f, meta, columns, points)
}
