// Package cmd implements the CLI application to analyze portfolio
// performance and risk.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&twrCmd{},
	&mwrCmd{},
	&perfCmd{},
	&riskCmd{},
	&benchmarkCmd{},
	&attributionCmd{},
	&fxCmd{},
	&cashCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run (e.g. no TTY information).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// readInput decodes a JSON payload into v, read from the named file or from
// stdin when name is empty or "-". A non-empty jsonpath expression plucks the
// payload out of a larger document first, so reports can feed on exports from
// other tools without reshaping them.
func readInput(name, path string, v any) error {
	var r io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if path == "" {
		return json.Unmarshal(data, v)
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fmt.Errorf("error applying path %q: %w", path, err)
	}
	plucked, err := json.Marshal(jval)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plucked, v); err == nil {
		return nil
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: retry with the unwrapped answer
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		plucked, err = json.Marshal(jlist[0])
		if err != nil {
			return err
		}
		return json.Unmarshal(plucked, v)
	}
	return fmt.Errorf("path %q does not select a usable payload", path)
}

// usageError prints the error and returns the usage exit status.
func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
