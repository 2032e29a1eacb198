package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// Report modes.
const (
	ModeArt   = "art"
	ModeNoise = "noise"
	ModePrint = "print"
)

// ChannelReport summarizes one channel's expression.
type ChannelReport struct {
	Channel    string         `json:"channel"`
	Expression string         `json:"expression"`
	LaTeX      string         `json:"latex"`
	Depth      int            `json:"depth"`
	NodeCount  int            `json:"node_count"`
	Operators  map[string]int `json:"operators"`
	OutOfGamut int64          `json:"out_of_gamut"`
}

// Report summarizes a run.
type Report struct {
	RunID     string          `json:"run_id"`
	Mode      string          `json:"mode"`
	Seed      int64           `json:"seed"`
	Pool      string          `json:"pool"`
	Operators []string        `json:"operators,omitempty"`
	Config    Config          `json:"config"`
	Channels  []ChannelReport `json:"channels,omitempty"`
	Pixels    int             `json:"pixels,omitempty"`
	Output    string          `json:"output,omitempty"`
	Elapsed   time.Duration   `json:"elapsed_ns,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// WriteReport writes r in the named format. Dot output needs the trees
// themselves; use WriteDot for that.
func WriteReport(w io.Writer, format string, r Report) error {
	switch format {
	case "json":
		return WriteJSONReport(w, r)
	case "latex":
		return WriteLatexReport(w, r)
	case "text", "":
		return WriteTextReport(w, r)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteTextReport writes r in human-readable format, one block per channel.
func WriteTextReport(w io.Writer, r Report) error {
	p := message.NewPrinter(language.English)
	if _, err := fmt.Fprintf(w, "Run %s (%s, seed %d, pool %s)\n", r.RunID, r.Mode, r.Seed, r.Pool); err != nil {
		return err
	}
	if len(r.Operators) > 0 {
		if _, err := fmt.Fprintf(w, "Operators: %s\n", strings.Join(r.Operators, ", ")); err != nil {
			return err
		}
	}
	for _, c := range r.Channels {
		label := strings.ToUpper(c.Channel) + " FUNCTION:"
		if _, err := fmt.Fprintf(w, "%-15s %s\n", label, c.Expression); err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "  depth %d, %d nodes, %d out-of-gamut samples\n",
			c.Depth, c.NodeCount, c.OutOfGamut); err != nil {
			return err
		}
	}
	if r.Pixels > 0 {
		line := p.Sprintf("Rendered %d pixels", r.Pixels)
		line += fmt.Sprintf(" (%dx%d) in %s", r.Config.Width, r.Config.Height, r.Elapsed.Round(time.Millisecond))
		if r.Output != "" {
			line += " -> " + r.Output
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSONReport writes r as JSON.
func WriteJSONReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// latexEscape escapes underscores for LaTeX text mode.
func latexEscape(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// WriteLatexReport writes a compilable LaTeX document with one displayed
// formula per channel.
func WriteLatexReport(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{amsmath}\n")
	b.WriteString("\\usepackage{geometry}\n")
	b.WriteString("\\geometry{margin=1in}\n")
	b.WriteString("\\begin{document}\n")
	fmt.Fprintf(&b, "\\section*{Run \\texttt{%s}}\n", latexEscape(r.RunID))
	fmt.Fprintf(&b, "\\noindent Seed: %d, Pool: \\texttt{%s}, Depth: $[%d, %d]$\n\n",
		r.Seed, latexEscape(r.Pool), r.Config.MinDepth, r.Config.MaxDepth)
	for _, c := range r.Channels {
		fmt.Fprintf(&b, "\\subsection*{%s (depth %d, %d nodes)}\n",
			strings.ToUpper(c.Channel[:1])+c.Channel[1:], c.Depth, c.NodeCount)
		b.WriteString("\\[\n")
		fmt.Fprintf(&b, "  %s\n", c.LaTeX)
		b.WriteString("\\]\n")
	}
	b.WriteString("\\end{document}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDot writes one Graphviz digraph per channel.
func WriteDot(w io.Writer, trees Channels) error {
	for c, tree := range trees {
		if err := expr.WriteDot(w, Channel(c).String(), tree); err != nil {
			return err
		}
	}
	return nil
}
