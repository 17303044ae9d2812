// slotmapctl is a REPL for poking at an in-memory slot map.
//
// Usage:
//
//	slotmapctl [--capacity N] [--grow doubling|fixed] [--config FILE]
//
// Commands (in REPL):
//
//	add <id> <payload>   Insert a record, prints its key
//	get <key>            Look up a record by key (hex)
//	remove <key>         Remove a record by key (hex)
//	slice                Print the live prefix in storage order
//	len                  Print the number of live records
//	cap                  Print current capacity
//	indirect             Print how many live records are indirect-only
//	clear                Empty the map and invalidate every key
//	invalidate           Resalt the map without touching its contents
//	rekey                Reissue keys for all live records
//	drain                Remove and print every record, then clear
//	help                 Show this help
//	exit / quit / q      Exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flagpkg "github.com/spf13/pflag"

	"github.com/sirkibsirkib/contig-storage"
)

// record is the demo element type: 16 bytes, comparable, pointer-free.
type record struct {
	ID      uint64
	Payload uint64
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	capacity := flagpkg.Uint64("capacity", 64, "initial slot capacity")
	grow := flagpkg.String("grow", "doubling", "growth policy: doubling|fixed")
	configPath := flagpkg.String("config", "", "optional JSONC config file overriding the flags above")
	flagpkg.Parse()

	policy, err := parseGrowPolicy(*grow)
	if err != nil {
		return err
	}

	if *configPath != "" {
		cfg, err := loadFileConfig(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if cfg.Capacity > 0 {
			*capacity = cfg.Capacity
		}

		if cfg.GrowPolicy != "" {
			policy, err = parseGrowPolicy(cfg.GrowPolicy)
			if err != nil {
				return fmt.Errorf("config growPolicy: %w", err)
			}
		}
	}

	sm, err := slotmap.New[record](slotmap.Config{Capacity: *capacity, GrowPolicy: policy})
	if err != nil {
		return fmt.Errorf("creating slot map: %w", err)
	}

	repl := &REPL{sm: sm}

	return repl.Run()
}

func parseGrowPolicy(s string) (slotmap.GrowPolicy, error) {
	switch strings.ToLower(s) {
	case "doubling", "":
		return slotmap.Doubling, nil
	case "fixed":
		return slotmap.Fixed, nil
	default:
		return 0, fmt.Errorf("unknown growth policy %q (want doubling|fixed)", s)
	}
}

// REPL is the interactive command loop, modeled on the teacher CLI's own
// liner-backed REPL.
type REPL struct {
	sm    *slotmap.SlotMap[record]
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".slotmapctl_history")
}

func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("slotmapctl - slot map REPL (capacity=%d)\n", r.sm.Capacity())
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("slotmap> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
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
		case "add":
			r.cmdAdd(args)
		case "get":
			r.cmdGet(args)
		case "remove", "rm", "del":
			r.cmdRemove(args)
		case "slice":
			r.cmdSlice()
		case "len":
			fmt.Printf("Live entries: %d\n", r.sm.Len())
		case "cap":
			fmt.Printf("Capacity: %d\n", r.sm.Capacity())
		case "indirect":
			fmt.Printf("Indirect-only entries: %d\n", r.sm.IndirectCount())
		case "clear":
			r.sm.Clear()
			fmt.Println("OK: cleared")
		case "invalidate":
			r.sm.InvalidateKeys()
			fmt.Println("OK: all outstanding keys invalidated")
		case "rekey":
			r.cmdRekey()
		case "drain":
			r.cmdDrain()
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	commands := []string{
		"add", "get", "remove", "rm", "del", "slice", "len", "cap",
		"indirect", "clear", "invalidate", "rekey", "drain",
		"help", "exit", "quit", "q",
	}

	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  add <id> <payload>   Insert a record, prints its key")
	fmt.Println("  get <key>            Look up a record by key (hex)")
	fmt.Println("  remove <key>         Remove a record by key (hex)")
	fmt.Println("  slice                Print the live prefix in storage order")
	fmt.Println("  len                  Print the number of live records")
	fmt.Println("  cap                  Print current capacity")
	fmt.Println("  indirect             Print how many live records are indirect-only")
	fmt.Println("  clear                Empty the map and invalidate every key")
	fmt.Println("  invalidate           Resalt the map without touching its contents")
	fmt.Println("  rekey                Reissue keys for all live records")
	fmt.Println("  drain                Remove and print every record, then clear")
	fmt.Println("  help                 Show this help")
	fmt.Println("  exit / quit / q      Exit")
}

func (r *REPL) cmdAdd(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: add <id> <payload>")

		return
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Error parsing id: %v\n", err)

		return
	}

	payload, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Printf("Error parsing payload: %v\n", err)

		return
	}

	k, err := r.sm.Add(record{ID: id, Payload: payload})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("OK: key=%016x\n", uint64(k))
}

func (r *REPL) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: get <key>")

		return
	}

	k, err := parseKey(args[0])
	if err != nil {
		fmt.Printf("Error parsing key: %v\n", err)

		return
	}

	rec, ok := r.sm.Get(k)
	if !ok {
		fmt.Println("(not found)")

		return
	}

	fmt.Printf("ID=%d Payload=%d\n", rec.ID, rec.Payload)
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: remove <key>")

		return
	}

	k, err := parseKey(args[0])
	if err != nil {
		fmt.Printf("Error parsing key: %v\n", err)

		return
	}

	rec, ok := r.sm.Remove(k)
	if !ok {
		fmt.Println("(not found)")

		return
	}

	fmt.Printf("OK: removed ID=%d Payload=%d\n", rec.ID, rec.Payload)
}

func (r *REPL) cmdSlice() {
	slice := r.sm.Slice()
	if len(slice) == 0 {
		fmt.Println("(empty)")

		return
	}

	for i, rec := range slice {
		fmt.Printf("%3d. ID=%d Payload=%d\n", i, rec.ID, rec.Payload)
	}
}

func (r *REPL) cmdRekey() {
	n := 0

	for k := range r.sm.AssignNewKeys() {
		n++

		rec, _ := r.sm.Get(k)
		fmt.Printf("%016x -> ID=%d Payload=%d\n", uint64(k), rec.ID, rec.Payload)
	}

	fmt.Printf("OK: reissued %d keys\n", n)
}

func (r *REPL) cmdDrain() {
	n := 0

	for rec := range r.sm.Drain() {
		n++

		fmt.Printf("ID=%d Payload=%d\n", rec.ID, rec.Payload)
	}

	fmt.Printf("OK: drained %d records\n", n)
}

func parseKey(s string) (slotmap.Key, error) {
	raw, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("expected hex key: %w", err)
	}

	return slotmap.Key(raw), nil
}
