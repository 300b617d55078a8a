package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gostonefire/memhashmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExecCommand(arg *rootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [script]",
		Short: "Run hash map operations from a script",
		Long: "Run one operation per line from the script file, or from stdin if no file is given.\n" +
			"Operations: set <key> <value>, get <key>, delete <key>, values, keys, size, stat.\n" +
			"Empty lines and lines starting with # are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				var f *os.File
				f, err = os.Open(args[0])
				if err != nil {
					return fmt.Errorf("error while opening script: %s", err)
				}
				defer func(f *os.File) { _ = f.Close() }(f)
				in = f
			}

			hm, err := arg.newHashMap()
			if err != nil {
				return
			}

			return runScript(hm, in, cmd.OutOrStdout(), arg.logger)
		},
	}

	return cmd
}

// runScript - Executes each line of the script against the hash map and writes the results to out.
// A set that fails for lack of slots is reported and the script continues, an unknown operation stops it.
func runScript(hm *memhashmap.HashMap[string], in io.Reader, out io.Writer, logger *zap.Logger) (err error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		op, params := fields[0], fields[1:]

		switch op {
		case "set":
			if len(params) < 2 {
				return fmt.Errorf("line %d: set needs a key and a value", lineNo)
			}
			// The value is the rest of the line after the key
			value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(line, op)), params[0]))
			if setErr := hm.Set(params[0], value); setErr != nil {
				logger.Warn("set failed", zap.Int("line", lineNo), zap.Error(setErr))
				_, _ = fmt.Fprintf(out, "error: %s\n", setErr)
			} else {
				_, _ = fmt.Fprintln(out, "ok")
			}

		case "get":
			if len(params) != 1 {
				return fmt.Errorf("line %d: get needs exactly one key", lineNo)
			}
			if value, found := hm.Get(params[0]); found {
				_, _ = fmt.Fprintln(out, value)
			} else {
				_, _ = fmt.Fprintln(out, "(not found)")
			}

		case "delete":
			if len(params) != 1 {
				return fmt.Errorf("line %d: delete needs exactly one key", lineNo)
			}
			_, _ = fmt.Fprintln(out, hm.Delete(params[0]))

		case "values":
			_, _ = fmt.Fprintf(out, "[%s]\n", strings.Join(hm.Values(), " "))

		case "keys":
			_, _ = fmt.Fprintf(out, "[%s]\n", strings.Join(hm.Keys(), " "))

		case "size":
			_, _ = fmt.Fprintln(out, hm.Size())

		case "stat":
			printStat(out, hm.Stat(false))

		default:
			return fmt.Errorf("line %d: unknown operation %q", lineNo, op)
		}
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading script: %s", err)
	}

	return
}

// printStat - Writes hash map statistics to out
func printStat(out io.Writer, stat *memhashmap.HashMapStat) {
	_, _ = fmt.Fprintf(out, "records: %d\n", stat.Records)
	_, _ = fmt.Fprintf(out, "capacity: %d\n", stat.Capacity)
	_, _ = fmt.Fprintf(out, "load factor: %.2f%%\n", stat.LoadFactor*100)
	_, _ = fmt.Fprintf(out, "used slots: %d\n", stat.UsedSlots)
	_, _ = fmt.Fprintf(out, "deleted slots: %d\n", stat.DeletedSlots)
	_, _ = fmt.Fprintf(out, "max slot length: %d\n", stat.MaxSlotLength)
	_, _ = fmt.Fprintf(out, "average slot length: %.2f\n", stat.AverageSlotLength)
}
