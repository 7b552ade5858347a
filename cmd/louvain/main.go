// Command louvain is a one-shot batch front end over the library: load a
// CSV edge list, run the optimiser, print a JSON report.
package main

import (
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"
)

func main() {
	// .env only ever supplies optimiser tuning defaults (LOUVAIN_EPS,
	// LOUVAIN_DELTA, LOUVAIN_SEED); a missing file is not an error.
	_ = godotenv.Load()

	log := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	stdr.SetVerbosity(1)

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error(err, "command failed")
		os.Exit(1)
	}
}
