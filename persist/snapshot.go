package persist

import (
	"encoding/json"
	"io"

	"github.com/mcppgo/mcpp/grid"
)

// UAVRecord is one agent's persisted identity and seed position.
type UAVRecord struct {
	Name string `json:"name"`
	R    int    `json:"r"`
	C    int    `json:"c"`
}

// Snapshot is the engine's full persisted state: the label assignment
// matrix and one record per agent, enough to resume a session exactly.
type Snapshot struct {
	UAVs []UAVRecord `json:"uavs"`
	Map  [][]int     `json:"map"`
}

// FromLabelMatrix builds a Snapshot from lm and a name per agent (in
// index order).
func FromLabelMatrix(lm *grid.LabelMatrix, seeds []grid.Coord, names []string) Snapshot {
	uavs := make([]UAVRecord, len(names))
	for i, name := range names {
		uavs[i] = UAVRecord{Name: name, R: seeds[i].R, C: seeds[i].C}
	}
	m := make([][]int, lm.H)
	for r := range m {
		m[r] = append([]int(nil), lm.Labels[r]...)
	}
	return Snapshot{UAVs: uavs, Map: m}
}

// ToLabelMatrix rebuilds a *grid.LabelMatrix and seed list from s.
func (s Snapshot) ToLabelMatrix() (*grid.LabelMatrix, []grid.Coord) {
	h := len(s.Map)
	w := 0
	if h > 0 {
		w = len(s.Map[0])
	}
	lm := grid.NewLabelMatrix(h, w, grid.Occupied)
	for r := 0; r < h; r++ {
		copy(lm.Labels[r], s.Map[r])
	}
	seeds := make([]grid.Coord, len(s.UAVs))
	for i, u := range s.UAVs {
		seeds[i] = grid.Coord{R: u.R, C: u.C}
	}
	return lm, seeds
}

// Encode writes s as JSON to w.
func Encode(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Decode reads a Snapshot as JSON from r.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	err := json.NewDecoder(r).Decode(&s)
	return s, err
}
