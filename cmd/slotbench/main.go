// slotbench runs timed insert/erase workloads against one or more
// slottable variants, driven by a JSON-with-comments config file, and
// writes a markdown report. It mirrors config.go's use of hujson for
// human-edited configuration and bench/tk-bench.go's markdown-table
// report style, but drives the containers in-process instead of shelling
// out to hyperfine, since there is no separate binary to invoke here.
//
// Usage:
//
//	slotbench --config=bench.hujson [--out=report.md]
//
// Config file format (JSON-with-comments, trailing commas allowed):
//
//	{
//	  // variants to exercise; any of packed, validmap, sortedfree, noiter
//	  "variants": ["packed", "validmap"],
//	  "counts": [1000, 100000],
//	  // fraction of steps, after warmup, that erase a live slot instead
//	  // of inserting a new one
//	  "churn_ratio": 0.3,
//	}
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/tailscale/hujson"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slottable/pkg/slottable"
)

// Config is the shape of a slotbench hujson config file.
type Config struct {
	Variants   []string `json:"variants"`
	Counts     []int    `json:"counts"`
	ChurnRatio float64  `json:"churn_ratio"`
	Seed       int64    `json:"seed"`
}

func defaultConfig() Config {
	return Config{
		Variants:   []string{"packed", "validmap", "sortedfree", "noiter"},
		Counts:     []int{1000, 100000},
		ChurnRatio: 0.3,
		Seed:       1,
	}
}

func main() {
	configPath := flag.String("config", "", "path to a hujson benchmark config file (optional, defaults used if absent)")
	outPath := flag.String("out", "", "path to write the markdown report (default: stdout)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "slotbench:", err)
		os.Exit(1)
	}

	report := runBenchmarks(cfg)

	if *outPath == "" {
		fmt.Print(report)
		return
	}

	if err := os.WriteFile(*outPath, []byte(report), 0o600); err != nil {
		fmt.Fprintln(os.Stderr, "slotbench:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *outPath)
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if len(cfg.Variants) == 0 {
		return Config{}, fmt.Errorf("config: variants must not be empty")
	}
	if len(cfg.Counts) == 0 {
		return Config{}, fmt.Errorf("config: counts must not be empty")
	}

	return cfg, nil
}

// table is the surface slotbench needs to drive a variant. It is a subset
// of the one in cmd/slotshell and cmd/slotseed; each binary declares its own
// since there's no shared internal package worth introducing for three
// lines of interface.
type table interface {
	Insert(string) slottable.Link[uint32]
	Erase(slottable.Link[uint32])
	Size() int
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
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

type result struct {
	variant    string
	count      int
	insertMean time.Duration
	eraseMean  time.Duration
	churnMean  time.Duration
}

func runBenchmarks(cfg Config) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## slotbench run %s\n\n", time.Now().UTC().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- churn ratio: %.2f\n", cfg.ChurnRatio))
	sb.WriteString(fmt.Sprintf("- seed: %d\n\n", cfg.Seed))

	var results []result

	for _, count := range cfg.Counts {
		for _, variant := range cfg.Variants {
			tbl, err := newTable(variant)
			if err != nil {
				fmt.Fprintln(os.Stderr, "slotbench:", err)
				continue
			}
			results = append(results, benchOne(variant, count, cfg.ChurnRatio, cfg.Seed, tbl))
		}
	}

	sb.WriteString("| Variant | Count | Insert (mean/op) | Erase (mean/op) | Churn (mean/op) |\n")
	sb.WriteString("|:---|---:|---:|---:|---:|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %d | %v | %v | %v |\n",
			r.variant, r.count, r.insertMean, r.eraseMean, r.churnMean))
	}

	return sb.String()
}

// benchOne times three phases for one variant/count pair: filling the
// table to count entries, a churn phase that alternates insert/erase
// according to churnRatio for count more steps, then erasing every entry
// still live.
func benchOne(variant string, count int, churnRatio float64, seed int64, tbl table) result {
	links := make([]slottable.Link[uint32], 0, count)

	start := time.Now()
	for i := 0; i < count; i++ {
		links = append(links, tbl.Insert("bench"))
	}
	insertElapsed := time.Since(start)

	churnStart := time.Now()
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < count; i++ {
		if len(links) > 0 && r.Float64() < churnRatio {
			idx := r.Intn(len(links))
			tbl.Erase(links[idx])
			links = append(links[:idx], links[idx+1:]...)
			continue
		}
		links = append(links, tbl.Insert("bench"))
	}
	churnElapsed := time.Since(churnStart)

	erased := time.Duration(len(links))
	eraseStart := time.Now()
	for _, l := range links {
		tbl.Erase(l)
	}
	eraseElapsed := time.Since(eraseStart)

	n := time.Duration(count)
	if n == 0 {
		n = 1
	}
	if erased == 0 {
		erased = 1
	}

	return result{
		variant:    variant,
		count:      count,
		insertMean: insertElapsed / n,
		eraseMean:  eraseElapsed / erased,
		churnMean:  churnElapsed / n,
	}
}
