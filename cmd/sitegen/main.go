package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rgonek/sitegen/commonmark"
	"github.com/rgonek/sitegen/site"
	"gopkg.in/yaml.v3"
)

const (
	engineBuiltin    = "builtin"
	engineCommonMark = "commonmark"
	engineGFM        = "gfm"
	engineGoldmark   = "goldmark"
)

// engineConfig maps an -engine value to the site engine and goldmark flavor.
func engineConfig(name string) (site.Engine, commonmark.Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", engineBuiltin:
		return site.EngineBuiltin, commonmark.Config{}, nil
	case engineCommonMark:
		return site.EngineGoldmark, commonmark.Config{Flavor: commonmark.FlavorCommonMark}, nil
	case engineGFM, engineGoldmark:
		return site.EngineGoldmark, commonmark.Config{Flavor: commonmark.FlavorGFM, HeadingIDs: true}, nil
	default:
		return "", commonmark.Config{}, fmt.Errorf("unknown engine %q (allowed: builtin, commonmark, gfm)", name)
	}
}

type options struct {
	configPath string
	content    string
	static     string
	out        string
	template   string
	base       string
	engine     string
	logLevel   string
	logFormat  string
	dump       string
	set        map[string]bool
}

func parseOptions(args []string, stderr io.Writer) (options, []string, error) {
	defaults := site.DefaultConfig()

	var opts options
	fs := flag.NewFlagSet("sitegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.content, "content", defaults.ContentDir, "Markdown content directory")
	fs.StringVar(&opts.static, "static", defaults.StaticDir, "Static asset directory")
	fs.StringVar(&opts.out, "out", defaults.OutputDir, "Output directory (removed and recreated)")
	fs.StringVar(&opts.template, "template", defaults.TemplatePath, "HTML page template")
	fs.StringVar(&opts.base, "base", defaults.BasePath, "Base path for root-relative links")
	fs.StringVar(&opts.engine, "engine", engineBuiltin, "Engine: builtin|commonmark|gfm")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: trace|debug|info|warn|error")
	fs.StringVar(&opts.logFormat, "log-format", "console", "Log format: console|json|pretty")
	fs.StringVar(&opts.dump, "dump", "", "Print the compiled node tree of a markdown file and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sitegen [options] [base-path]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, fs.Args(), nil
}

// resolveConfig layers defaults, the config file, explicit flags and the
// positional base path, in that order.
func resolveConfig(opts options, positional []string) (site.Config, error) {
	cfg := site.DefaultConfig()

	if opts.configPath != "" {
		data, err := os.ReadFile(opts.configPath)
		if err != nil {
			return site.Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return site.Config{}, fmt.Errorf("parse config %s: %w", opts.configPath, err)
		}
	}

	if opts.set["content"] {
		cfg.ContentDir = opts.content
	}
	if opts.set["static"] {
		cfg.StaticDir = opts.static
	}
	if opts.set["out"] {
		cfg.OutputDir = opts.out
	}
	if opts.set["template"] {
		cfg.TemplatePath = opts.template
	}
	if opts.set["base"] {
		cfg.BasePath = opts.base
	}
	if opts.set["engine"] {
		engine, goldmarkCfg, err := engineConfig(opts.engine)
		if err != nil {
			return site.Config{}, err
		}
		cfg.Engine = engine
		cfg.Goldmark.Flavor = goldmarkCfg.Flavor
		cfg.Goldmark.HeadingIDs = cfg.Goldmark.HeadingIDs || goldmarkCfg.HeadingIDs
	}

	switch len(positional) {
	case 0:
	case 1:
		cfg.BasePath = positional[0]
	default:
		return site.Config{}, fmt.Errorf("expected at most one base path, got %d arguments", len(positional))
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, positional, err := parseOptions(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if opts.dump != "" {
		data, err := os.ReadFile(opts.dump)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading file: %v\n", err)
			return 1
		}
		if err := dumpDocument(string(data), stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "Error compiling file: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := resolveConfig(opts, positional)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	logger, err := newLogger(opts.logLevel, opts.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid logging options: %v\n", err)
		return 1
	}

	gen, err := site.New(cfg, site.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	stats, err := gen.Build(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error building site: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Built %s pages (%s drafts skipped) and copied %s assets (%s failed), %s written to %s\n",
		humanize.Comma(int64(stats.Pages)),
		humanize.Comma(int64(stats.Drafts)),
		humanize.Comma(int64(stats.Assets)),
		humanize.Comma(int64(stats.AssetFailures)),
		humanize.Bytes(uint64(stats.Bytes)),
		cfg.OutputDir,
	)
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
