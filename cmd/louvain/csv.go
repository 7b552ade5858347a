package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/louvain/core"
)

// readEdgeListCSV builds a core.Graph from a CSV edge list: "from,to" or
// "from,to,weight" per row, comments starting with '#' ignored. Weight
// defaults to 1.0 when the column is absent or blank.
//
// Complexity: O(rows).
func readEdgeListCSV(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	g := core.NewGraph(core.WithDirected(directed), core.WithLoops(), core.WithMultiEdges())

	rowNum := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edge list row %d: %w", rowNum+1, err)
		}
		rowNum++

		if len(record) < 2 {
			return nil, fmt.Errorf("edge list row %d: need at least 2 columns, got %d", rowNum, len(record))
		}
		from, to := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])

		weight := 1.0
		if len(record) >= 3 && strings.TrimSpace(record[2]) != "" {
			w, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("edge list row %d: invalid weight %q: %w", rowNum, record[2], err)
			}
			weight = w
		}

		if _, err := g.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("edge list row %d: %w", rowNum, err)
		}
	}

	return g, nil
}
