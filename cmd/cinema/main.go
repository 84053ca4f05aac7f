// Command cinema runs the catalog demonstration or queries catalog files.
//
// Without flags it replays the demonstration sequence on a built-in set of
// favorites. With flags it loads the given catalogs (or the built-in set),
// applies removals, prints details and filter results:
//
//	cinema -catalog movies.json.zst -filter year__lt=2010 -filter rating__gte=9.0
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/cinema"
	"github.com/hupe1980/cinema/catalog"
	"github.com/hupe1980/cinema/codec"
	"github.com/hupe1980/cinema/metadata"
)

type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

type config struct {
	catalogs  multiFlag
	filters   multiFlag
	removes   multiFlag
	details   string
	output    string
	codec     string
	logLevel  string
	logFormat string
}

// query reports whether any flag asks for more than the demonstration.
func (cfg *config) query() bool {
	return len(cfg.catalogs) > 0 || len(cfg.filters) > 0 || len(cfg.removes) > 0 || cfg.details != ""
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("cinema", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(&cfg.catalogs, "catalog", "catalog file to load (repeatable; .zst and .lz4 are decompressed)")
	fs.Var(&cfg.filters, "filter", "filter criterion field[__op]=value (repeatable; quote numeric strings: title=\"1917\")")
	fs.Var(&cfg.removes, "remove", "title to remove before querying (repeatable)")
	fs.StringVar(&cfg.details, "details", "", "print details of the movie with this title")
	fs.StringVar(&cfg.output, "output", "text", "result format (text|json)")
	fs.StringVar(&cfg.codec, "codec", "go-json", "catalog codec ("+strings.Join(codec.Names(), "|")+")")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.output != "text" && cfg.output != "json" {
		return nil, fmt.Errorf("invalid -output %q", cfg.output)
	}
	return &cfg, nil
}

func newLogger(cfg *config, w io.Writer) (*cinema.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", cfg.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.logFormat {
	case "text":
		return cinema.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return cinema.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q", cfg.logFormat)
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "cinema:", err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "cinema:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, stdout, stderr io.Writer) error {
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	if !cfg.query() {
		return demo(stdout, logger)
	}

	c, ok := codec.ByName(cfg.codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.codec)
	}

	movies := favorites()
	if len(cfg.catalogs) > 0 {
		movies, err = loadCatalogs(ctx, cfg.catalogs, c)
		if err != nil {
			return err
		}
		logger.Info("catalogs loaded", "files", len(cfg.catalogs), "movies", len(movies))
	}
	col := cinema.New(cinema.WithLogger(logger), cinema.WithMovies(movies...))

	for _, title := range cfg.removes {
		if _, err := col.Remove(cinema.Title(title)); err != nil {
			return err
		}
	}

	if cfg.details != "" {
		d, err := col.Details(cinema.Title(cfg.details))
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, d)
		if len(cfg.filters) == 0 {
			return nil
		}
	}

	criteria, err := parseCriteria(cfg.filters)
	if err != nil {
		return err
	}
	result, err := col.Filter(criteria)
	if err != nil {
		return err
	}

	if cfg.output == "json" {
		if err := catalog.Encode(stdout, result.All(), catalog.WithCodec(c)); err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout)
		return err
	}
	for m := range result.All() {
		fmt.Fprintln(stdout, m.Details())
	}
	return nil
}

// parseCriteria turns field[__op]=value arguments into criteria. Values are
// read as int, float, true/false, a quoted string, or else a bare string;
// float parsing only applies to digit-like text, so nan and inf stay strings.
func parseCriteria(args []string) (metadata.Criteria, error) {
	criteria := make(metadata.Criteria, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid -filter %q: want field[__op]=value", arg)
		}
		if _, dup := criteria[key]; dup {
			return nil, fmt.Errorf("duplicate -filter key %q", key)
		}
		v, err := parseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid -filter %q: %w", arg, err)
		}
		criteria[key] = v
	}
	return criteria, nil
}

// parseValue reads a -filter operand. Digits parse as numbers, so a numeric
// title such as 1917 has to be quoted: -filter 'title="1917"'.
func parseValue(raw string) (any, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, nil
	}
	if looksNumeric(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, nil
		}
	}
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if strings.HasPrefix(raw, `"`) {
		return strconv.Unquote(raw)
	}
	return raw, nil
}

// looksNumeric keeps words like nan and inf out of ParseFloat.
func looksNumeric(raw string) bool {
	return raw != "" && strings.Trim(raw, "0123456789+-.eE") == ""
}
