// cmd/gof/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sghaida/gof/catalog"
	"github.com/sghaida/gof/internal/config"
	"github.com/sghaida/gof/internal/demo"
	"github.com/sghaida/gof/internal/logging"
	"github.com/sghaida/gof/singleton"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// Result is one demo run as rendered in json/yaml output.
type Result struct {
	Name    string   `json:"name" yaml:"name"`
	Pattern string   `json:"pattern" yaml:"pattern"`
	Output  []string `json:"output" yaml:"output"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gof", flag.ContinueOnError)
	flags.SetOutput(stderr)

	cfgPath := flags.String("config", "", "path to a YAML config file")
	only := flags.String("only", "", "comma-separated demo names to run (default: all)")
	list := flags.Bool("list", false, "list the catalogue instead of running it")
	format := flags.String("format", "", "output format: text, json or yaml (overrides config)")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: gof [-config file] [-only a,b] [-list] [-format text|json|yaml]")
		return exitUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "config:", err)
		return exitUsage
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *only != "" {
		cfg.Demos = splitNames(*only)
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "config:", err)
		return exitUsage
	}

	log, done, err := logging.New(cfg.Log, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "logging:", err)
		return exitUsage
	}
	defer done()

	// Composition root: the singleton holder and metrics registry live here.
	metrics := prometheus.NewRegistry()
	cat, err := demo.New(demo.Deps{Singleton: singleton.NewHolder(), Metrics: metrics})
	if err != nil {
		log.Error("build catalog", zap.Error(err))
		return exitFail
	}

	demos, err := cat.Select(cfg.Demos...)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if *list {
		if err := renderList(stdout, cfg.Output.Format, demos); err != nil {
			log.Error("render list", zap.Error(err))
			return exitFail
		}
		return exitOK
	}

	code := runDemos(stdout, cfg.Output, log, cat, demos)
	logMetrics(log, metrics)
	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func splitNames(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runDemos(stdout io.Writer, out config.OutputConfig, log *zap.Logger, cat *catalog.Catalog, demos []catalog.Demo) int {
	code := exitOK
	results := make([]Result, 0, len(demos))

	var heading func(string) string
	if out.Styled {
		style := lipgloss.NewRenderer(stdout).NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
		heading = func(s string) string { return style.Render(s) }
	} else {
		heading = func(s string) string { return s }
	}

	for i, d := range demos {
		var buf strings.Builder
		err := cat.Run(catalog.Env{Out: &buf, Log: log.With(zap.String("demo", d.Name))}, d)

		res := Result{Name: d.Name, Pattern: d.Pattern, Output: lines(buf.String())}
		if err != nil {
			code = exitFail
			res.Error = err.Error()
			log.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
		}
		results = append(results, res)

		if out.Format != config.FormatText {
			continue
		}
		if i > 0 {
			_, _ = fmt.Fprintln(stdout)
		}
		_, _ = fmt.Fprintln(stdout, heading(fmt.Sprintf("== %s (%s) ==", d.Pattern, d.Name)))
		_, _ = io.WriteString(stdout, buf.String())
		if err != nil {
			_, _ = fmt.Fprintln(stdout, "error:", err)
		}
	}

	if out.Format != config.FormatText {
		if err := encode(stdout, out.Format, results); err != nil {
			log.Error("render results", zap.Error(err))
			return exitFail
		}
	}
	return code
}

func renderList(w io.Writer, format string, demos []catalog.Demo) error {
	if format != config.FormatText {
		return encode(w, format, demos)
	}
	for _, d := range demos {
		if _, err := fmt.Fprintf(w, "%-10s %-24s %s\n", d.Name, d.Pattern, d.Summary); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// logMetrics reports gathered counters at debug level.
func logMetrics(log *zap.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		log.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				log.Debug("metric", zap.String("name", mf.GetName()), zap.Float64("value", c.GetValue()))
			}
		}
	}
}
