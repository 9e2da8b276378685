// Command sqarun runs one simulated-quantum-annealing pass over a
// hyperedge Ising problem read from a text file (or stdin) and prints the
// driver's result map to stdout, one "key = value" line per entry.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/PlanQK/SimulatedQuantumAnnealing/driver"
	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		seed      uint64
		steps     int
		nt        int
		tSched    string
		hSched    string
		remap     string
		periodic  bool
		firstIn   bool
		inputPath string
	)

	fs := flag.NewFlagSet("sqarun", flag.ContinueOnError)
	fs.Uint64Var(&seed, "seed", 0, "master RNG seed")
	fs.IntVar(&steps, "steps", 1000, "annealing steps")
	fs.IntVar(&nt, "nt", 32, "Trotter slice count")
	fs.StringVar(&tSched, "T", "[1.0,0.01]", "temperature schedule string")
	fs.StringVar(&hSched, "H", "[2.0,iF,0.01]", "transverse-field schedule string")
	fs.StringVar(&remap, "remap", "sorted,fill,0", "label remap policy")
	fs.BoolVar(&periodic, "periodic", true, "periodic Trotter boundary")
	fs.BoolVar(&firstIn, "first_in", false, "canonicalize output against the first spin's own value")
	fs.StringVar(&inputPath, "input", "", "problem file path (default: stdin)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	r, closeFn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeFn()

	n, rawEdges, warnings, err := problem.ParseText(r)
	if err != nil {
		return fmt.Errorf("sqarun: ingest: %w", err)
	}
	for _, w := range warnings {
		log.Printf("%s", w.String())
	}

	d, err := driver.New(n, rawEdges, driver.Config{
		Seed:     seed,
		Steps:    steps,
		NT:       nt,
		T:        tSched,
		H:        hSched,
		Remap:    remap,
		Periodic: periodic,
		FirstIn:  firstIn,
	})
	if err != nil {
		return fmt.Errorf("sqarun: build driver: %w", err)
	}

	if err := d.Run(); err != nil {
		return fmt.Errorf("sqarun: run: %w", err)
	}

	printResult(d.ToMap())
	return nil
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func printResult(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s = %s\n", k, m[k])
	}
}
