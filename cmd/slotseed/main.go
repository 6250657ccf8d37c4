// slotseed replays a scripted sequence of insert/erase operations against
// a slottable container from a YAML scenario file, then reports the final
// size, capacity, and (for variants that support it) a dump of surviving
// values. It exists to reproduce a particular churn pattern deterministically
// instead of typing it by hand into slotshell, mirroring the seeding idiom
// of the teacher's now-removed cmd/tk-seed.
//
// Usage:
//
//	slotseed --scenario=scenario.yaml [--variant=validmap]
//
// Scenario file format:
//
//	# insert pushes a value; erase removes the n-th still-live value
//	# inserted so far (0-indexed, in insertion order).
//	ops:
//	  - insert: alpha
//	  - insert: beta
//	  - erase: 0
//	  - insert: gamma
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/slottable/pkg/slottable"
)

// Op is one line of a scenario file: exactly one of Insert or Erase is set.
type Op struct {
	Insert string `yaml:"insert,omitempty"`
	Erase  *int   `yaml:"erase,omitempty"`
}

// Scenario is the top-level shape of a scenario YAML file.
type Scenario struct {
	Ops []Op `yaml:"ops"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file (required)")
	variant := flag.String("variant", "validmap", "storage variant: packed|validmap|sortedfree|noiter")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "slotseed: --scenario is required")
		os.Exit(1)
	}

	if err := run(*scenarioPath, *variant); err != nil {
		fmt.Fprintln(os.Stderr, "slotseed:", err)
		os.Exit(1)
	}
}

func run(scenarioPath, variant string) error {
	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return fmt.Errorf("reading scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return fmt.Errorf("parsing scenario: %w", err)
	}

	tbl, err := newTable(variant)
	if err != nil {
		return err
	}

	var live []slottable.Link[uint32]

	for i, op := range scenario.Ops {
		switch {
		case op.Erase != nil:
			idx := *op.Erase
			if idx < 0 || idx >= len(live) {
				return fmt.Errorf("op %d: erase index %d out of range (have %d live)", i, idx, len(live))
			}
			tbl.Erase(live[idx])
			live = append(live[:idx], live[idx+1:]...)
		case op.Insert != "":
			live = append(live, tbl.Insert(op.Insert))
		default:
			return fmt.Errorf("op %d: neither insert nor erase set", i)
		}
	}

	fmt.Printf("variant:  %s\n", variant)
	fmt.Printf("ops:      %d\n", len(scenario.Ops))
	fmt.Printf("size:     %d\n", tbl.Size())
	fmt.Printf("capacity: %d\n", tbl.Capacity())

	if s, ok := tbl.(scanner); ok {
		fmt.Println("live values:")
		s.ForEach(func(v *string) bool {
			fmt.Printf("  %s\n", *v)
			return true
		})
	} else {
		fmt.Println("live values: (variant does not support iteration)")
	}

	return nil
}

// table and scanner mirror the ones in cmd/slotshell; kept separate
// because the two binaries have no shared internal package to hang a
// common definition off of.
type table interface {
	Insert(string) slottable.Link[uint32]
	At(slottable.Link[uint32]) (*string, bool)
	Erase(slottable.Link[uint32])
	Size() int
	Capacity() int
}

type scanner interface {
	ForEach(func(*string) bool)
}

func newTable(variant string) (table, error) {
	switch variant {
	case "packed":
		return slottable.NewPacked[string, uint32](), nil
	case "validmap":
		return slottable.NewSparseValidMap[string, uint32]()
	case "sortedfree":
		return slottable.NewSparseSortedFree[string, uint32]()
	case "noiter":
		return slottable.NewSparseNoIter[string, uint32]()
	default:
		return nil, fmt.Errorf("unknown variant %q (want packed|validmap|sortedfree|noiter)", variant)
	}
}
