package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/skdltmxn/swiftmangle/mangling"
	"github.com/skdltmxn/swiftmangle/node"
)

var (
	kindColor  = color.New(color.FgCyan).SprintFunc()
	textColor  = color.New(color.FgGreen).SprintFunc()
	indexColor = color.New(color.FgYellow).SprintFunc()
	errColor   = color.New(color.FgRed).SprintFunc()
)

// writeTree prints n in the selected --format.
func writeTree(w io.Writer, n *node.Node) error {
	switch format {
	case "text":
		writeText(w, n, 0)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n.ToValue())
	case "yaml":
		data, err := yaml.Marshal(n.ToValue())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeText(w io.Writer, n *node.Node, depth int) {
	fmt.Fprintf(w, "%skind=%s", strings.Repeat("  ", depth), kindColor(n.Kind()))
	if text, ok := n.Text(); ok {
		fmt.Fprintf(w, ", text=%s", textColor(fmt.Sprintf("%q", text)))
	}
	if idx, ok := n.Index(); ok {
		fmt.Fprintf(w, ", index=%s", indexColor(idx))
	}
	fmt.Fprintln(w)
	for _, c := range n.Children() {
		writeText(w, c, depth+1)
	}
}

// inputs returns the command arguments, or the non-empty lines of stdin
// when there are none.
func inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(os.Stdin)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func decode(s string) (*node.Node, error) {
	return mangling.Decode(s, asType, mangling.WithLogger(debugLogger()))
}

// debugLogger returns the trace logger when --verbose is set.
func debugLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return theLog
}
