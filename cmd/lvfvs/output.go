package main

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/lvfvs/fvs"
)

// solutionRecord is the JSON form of an fvs.Solution.
type solutionRecord struct {
	Vertices []string `json:"vertices"`
	Weight   float64  `json:"weight"`
	Trials   int      `json:"trials,omitempty"`
}

func toRecord(s fvs.Solution) solutionRecord {
	return solutionRecord{Vertices: s.Vertices, Weight: s.Weight}
}

// solveRecord is printed by the solve command.
type solveRecord struct {
	Vertices int            `json:"vertices"`
	Edges    int            `json:"edges"`
	Optimal  solutionRecord `json:"optimal"`
	WRA      solutionRecord `json:"wra"`
}

// instanceRecord is one line of estimate output.
type instanceRecord struct {
	RunID           string             `json:"run_id"`
	Instance        int                `json:"instance"`
	Vertices        int                `json:"vertices"`
	Edges           int                `json:"edges"`
	Optimal         solutionRecord     `json:"optimal"`
	MinFeasibleSize int                `json:"min_feasible_size"`
	ExpectedTrials  map[string]float64 `json:"expected_trials"`
	MaxExpected     map[string]float64 `json:"max_expected_trials"`
}

// writeJSONLine writes v as one compact JSON line.
func writeJSONLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
