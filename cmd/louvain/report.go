package main

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/louvain/partition"
)

// report is the JSON shape written by the run subcommand. It carries no
// vertex IDs of its own: Membership is indexed by graphview vertex index,
// and VertexOrder supplies the original CSV-loading order that index 0..n-1
// refers to.
type report struct {
	RunID          string   `json:"run_id,omitempty"`
	Variant        string   `json:"variant"`
	Resolution     float64  `json:"resolution"`
	Seed           uint64   `json:"seed"`
	VertexOrder    []string `json:"vertex_order"`
	Membership     []int    `json:"membership"`
	NumCommunities int      `json:"num_communities"`
	Quality        float64  `json:"quality"`
}

func newReport(variant string, resolution float64, seed uint64, vertexOrder []string, p *partition.Partition, trace bool) report {
	rep := report{
		Variant:        variant,
		Resolution:     resolution,
		Seed:           seed,
		VertexOrder:    vertexOrder,
		Membership:     p.Membership(),
		NumCommunities: p.NumComms(),
		Quality:        p.Quality(),
	}
	if trace {
		rep.RunID = uuid.NewString()
	}

	return rep
}

func (rep report) writeTo(path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
