package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphseq/sequencer"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// report is the rendered outcome of one run.
type report struct {
	sequencer.Result `yaml:",inline"`
	Violations       []sequencer.Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

type renderer func(w io.Writer, rep report) error

func rendererFor(format string) (renderer, error) {
	switch strings.ToLower(format) {
	case formatText:
		return renderText, nil
	case formatJSON:
		return renderJSON, nil
	case formatYAML:
		return renderYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s, %s, or %s)", format, formatText, formatJSON, formatYAML)
	}
}

func renderText(w io.Writer, rep report) error {
	var b strings.Builder
	for i, chunk := range rep.Chunks {
		fmt.Fprintf(&b, "%d: %s\n", i, strings.Join(chunk, " "))
	}
	fmt.Fprintf(&b, "safe: %t\n", rep.Safe)
	for _, c := range rep.Cycles {
		fmt.Fprintf(&b, "cycle: %s\n", strings.Join(c, " -> "))
	}
	for _, v := range rep.Violations {
		fmt.Fprintf(&b, "violation: %s -> %s\n", v.Item, v.Dependency)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func renderYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
