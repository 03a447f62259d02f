package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/argverify"
	"github.com/dmitrymomot/argverify/pkg/config"
	"github.com/dmitrymomot/argverify/pkg/logger"
	"github.com/dmitrymomot/argverify/pkg/rulefile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("argverify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env-file", "", "load settings from this .env file")
	strict := fs.Bool("strict", false, "reject malformed rule specs")
	missing := fs.String("missing", "", "missing-argument policy: compare or report")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: argverify [flags] suite.yaml...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(stderr, "argverify: %v\n", err)
		return 2
	}
	if *strict {
		cfg.Strict = true
	}
	if *missing != "" {
		if cfg.Missing, err = argverify.ParseMissingPolicy(*missing); err != nil {
			fmt.Fprintf(stderr, "argverify: %v\n", err)
			return 2
		}
	}

	log := logger.New(append(cfg.LoggerOptions(), logger.WithOutput(stderr))...)

	var parserOpts []rulefile.ParserOption
	if cfg.Strict {
		parserOpts = append(parserOpts, rulefile.WithStrictRules())
	}
	parser := rulefile.NewParser(parserOpts...)
	opts := append(cfg.VerifierOptions(), argverify.WithLogger(log))

	failed := 0
	for _, path := range fs.Args() {
		suite, err := parser.ParseFile(ctx, path)
		if err != nil {
			log.Error("failed to load suite", logger.Suite(path), logger.Error(err))
			failed++
			continue
		}

		outcomes := suite.Run(opts...)
		for _, o := range outcomes {
			if o.OK {
				fmt.Fprintf(stdout, "PASS %s/%s\n", path, o.Case.Name)
				continue
			}
			fmt.Fprintf(stdout, "FAIL %s/%s: %s\n", path, o.Case.Name, o.Reason)
		}

		n := rulefile.Failed(outcomes)
		failed += n
		log.Info("suite finished",
			logger.Suite(path),
			slog.Int("cases", len(outcomes)),
			slog.Int("failed", n),
		)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
