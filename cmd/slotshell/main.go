// slotshell is an interactive shell for poking at a single slottable
// container by hand: insert values, inspect the link you get back, erase
// it, and watch size/capacity move. It holds exactly one table for the
// life of the process, picked by --variant at startup.
//
// Usage:
//
//	slotshell [--variant packed|validmap|sortedfree|noiter]
//
// Commands (in REPL):
//
//	put <value>          Insert a string value, print the link it returns
//	get <link>            Resolve a link to its value
//	del <link>            Erase a link
//	scan [limit]          List live values (not available for noiter)
//	len                   Count live values
//	cap                   Show allocated capacity
//	bulk <count>          Insert N random values
//	seq <count> [start]   Insert N sequential "v<n>" values
//	bench <count>         Time N inserts followed by N erases
//	variant               Show the active variant
//	help                  Show this help
//	exit / quit / q       Exit
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slottable/pkg/slottable"
)

// table is the subset of a slottable container's surface slotshell drives
// directly. Every variant this program picks between implements it.
type table interface {
	Insert(string) slottable.Link[uint32]
	At(slottable.Link[uint32]) (*string, bool)
	Erase(slottable.Link[uint32])
	Size() int
	Capacity() int
}

// scanner is implemented by every variant except SparseNoIter, which
// deliberately has no ForEach (spec.md §4.6). scan probes for it with a
// type assertion rather than baking ForEach into table.
type scanner interface {
	ForEach(func(*string) bool)
}

func main() {
	variant := flag.String("variant", "validmap", "storage variant: packed|validmap|sortedfree|noiter")
	flag.Parse()

	tbl, err := newTable(*variant)
	if err != nil {
		fmt.Fprintln(os.Stderr, "slotshell:", err)
		os.Exit(1)
	}

	r := &repl{variant: *variant, table: tbl}
	if err := r.run(); err != nil {
		fmt.Fprintln(os.Stderr, "slotshell:", err)
		os.Exit(1)
	}
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

// repl is the interactive command loop: a liner.State for readline-style
// editing and history, one active table, dispatch by the first word of the
// line.
type repl struct {
	variant string
	table   table
	liner   *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slotshell_history")
}

func (r *repl) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("slotshell - variant=%s\n", r.variant)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("slotshell> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil
		case "help", "?":
			r.printHelp()
		case "put":
			r.cmdPut(args)
		case "get":
			r.cmdGet(args)
		case "del", "delete":
			r.cmdDel(args)
		case "scan", "ls", "list":
			r.cmdScan(args)
		case "len", "count":
			r.cmdLen()
		case "cap", "capacity":
			r.cmdCap()
		case "bulk":
			r.cmdBulk(args)
		case "seq":
			r.cmdSeq(args)
		case "bench":
			r.cmdBench(args)
		case "variant":
			fmt.Println(r.variant)
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func (r *repl) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *repl) completer(line string) []string {
	commands := []string{"put", "get", "del", "scan", "len", "cap", "bulk", "seq", "bench", "variant", "help", "exit"}
	var matches []string
	for _, c := range commands {
		if strings.HasPrefix(c, line) {
			matches = append(matches, c)
		}
	}
	return matches
}

func (r *repl) printHelp() {
	fmt.Print(`Commands:
  put <value>          Insert a string value
  get <link>            Resolve a link to its value
  del <link>            Erase a link
  scan [limit]          List live values
  len                   Count live values
  cap                   Show allocated capacity
  bulk <count>          Insert N random values
  seq <count> [start]   Insert N sequential values
  bench <count>         Time N inserts followed by N erases
  variant               Show the active variant
  help                  Show this help
  exit / quit / q       Exit
`)
}

func parseLink(s string) (slottable.Link[uint32], error) {
	raw, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return slottable.NullLink[uint32](), fmt.Errorf("invalid link %q: %w", s, err)
	}
	return slottable.LinkFromRaw[uint32](uint32(raw)), nil
}

func (r *repl) cmdPut(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: put <value>")
		return
	}
	l := r.table.Insert(strings.Join(args, " "))
	fmt.Printf("link=%d\n", l.Raw())
}

func (r *repl) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: get <link>")
		return
	}
	l, err := parseLink(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	v, ok := r.table.At(l)
	if !ok {
		fmt.Println("(not found)")
		return
	}
	fmt.Println(*v)
}

func (r *repl) cmdDel(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: del <link>")
		return
	}
	l, err := parseLink(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	r.table.Erase(l)
	fmt.Println("ok")
}

func (r *repl) cmdScan(args []string) {
	s, ok := r.table.(scanner)
	if !ok {
		fmt.Println("the noiter variant does not support scan")
		return
	}

	limit := -1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			limit = n
		}
	}

	count := 0
	s.ForEach(func(v *string) bool {
		if limit >= 0 && count >= limit {
			return false
		}
		fmt.Printf("%d: %s\n", count, *v)
		count++
		return true
	})
}

func (r *repl) cmdLen() {
	fmt.Println(r.table.Size())
}

func (r *repl) cmdCap() {
	fmt.Println(r.table.Capacity())
}

func (r *repl) cmdBulk(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: bulk <count>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("invalid count")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < n; i++ {
		r.table.Insert(fmt.Sprintf("rand-%d", rng.Int63()))
	}
	fmt.Printf("inserted %d values\n", n)
}

func (r *repl) cmdSeq(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: seq <count> [start]")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("invalid count")
		return
	}
	start := 0
	if len(args) > 1 {
		start, _ = strconv.Atoi(args[1])
	}

	for i := 0; i < n; i++ {
		r.table.Insert(fmt.Sprintf("v%d", start+i))
	}
	fmt.Printf("inserted %d values\n", n)
}

func (r *repl) cmdBench(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: bench <count>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("invalid count")
		return
	}

	links := make([]slottable.Link[uint32], 0, n)
	start := time.Now()
	for i := 0; i < n; i++ {
		links = append(links, r.table.Insert("bench"))
	}
	insertElapsed := time.Since(start)

	start = time.Now()
	for _, l := range links {
		r.table.Erase(l)
	}
	eraseElapsed := time.Since(start)

	fmt.Printf("insert: %v (%v/op)\n", insertElapsed, insertElapsed/time.Duration(n))
	fmt.Printf("erase:  %v (%v/op)\n", eraseElapsed, eraseElapsed/time.Duration(n))
}
