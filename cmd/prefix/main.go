package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/prefix"
)

// app holds the state shared by the commands.
type app struct {
	flags      Config
	cfg        Config
	configPath string
	debug      bool

	in   string
	echo bool
	tree bool

	log *slog.Logger
}

func main() {
	var a app
	ctx := context.Background()
	if err := fang.Execute(ctx, a.rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prefix [flags] [expr ...]",
		Short: "Evaluate prefix expressions",
		Long: `prefix evaluates expressions in a small prefix-notation language with
integers, booleans, conditionals, and one-parameter functions.`,
		Example: `  # Evaluate an expression
  prefix '+(1, *(2, 3))'

  # Expressions starting with - follow --
  prefix -- '-(5, 7)'

  # Evaluate each line of a file
  prefix --in exprs.txt

  # Start an interactive session
  prefix`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			var srcs []string
			if a.in != "" {
				lines, err := readLines(a.in, cmd.InOrStdin())
				if err != nil {
					return err
				}
				srcs = lines
			}
			srcs = append(srcs, args...)
			if a.in == "" && len(args) == 0 {
				return a.repl(cmd.Context(), cmd.OutOrStdout())
			}
			return a.evalAll(cmd.Context(), cmd.OutOrStdout(), srcs)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&a.flags.LegacySubstitution, "legacy", false, "substitute function arguments only through operators")
	pf.BoolVar(&a.flags.AllowTrailing, "allow-trailing", false, "ignore input after a complete expression")
	pf.IntVar(&a.flags.MaxDepth, "max-depth", prefix.DefaultMaxDepth, "maximum evaluation depth")
	pf.StringVar(&a.configPath, "config", "", "TOML config file")
	pf.BoolVarP(&a.debug, "debug", "d", false, "enable debug logging")

	f := rootCmd.Flags()
	f.StringVar(&a.in, "in", "", "evaluate each non-blank line of a file, or - for stdin")
	f.BoolVar(&a.echo, "echo", false, "print each expression before its result")
	f.BoolVar(&a.tree, "tree", false, "print parse trees")
	f.IntVar(&a.flags.Jobs, "jobs", 0, "number of expressions to evaluate concurrently (default GOMAXPROCS)")

	rootCmd.AddCommand(a.replCmd(), a.tokensCmd())
	return rootCmd
}

// setup loads the config file, applies flags over it, and creates the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if a.debug {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.cfg = Config{MaxDepth: prefix.DefaultMaxDepth}
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = *cfg
		a.log.Debug("loaded config", slog.String("path", a.configPath))
	}
	a.cfg.merge(&a.flags, cmd.Flags().Changed)
	a.log.Debug("settings",
		slog.Bool("legacy", a.cfg.LegacySubstitution),
		slog.Bool("allow_trailing", a.cfg.AllowTrailing),
		slog.Int("max_depth", a.cfg.MaxDepth),
		slog.Int("jobs", a.cfg.jobs()),
	)
	return nil
}

func (a *app) context() *prefix.Context {
	return prefix.NewContext(append(a.cfg.contextOptions(), prefix.Logger(a.log))...)
}

// evalAll evaluates each expression concurrently and writes the results in
// order.
func (a *app) evalAll(ctx context.Context, w io.Writer, srcs []string) error {
	pctx := a.context()
	out := make([]string, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.jobs())
	for i, src := range srcs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i], _ = a.line(pctx, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, s := range out {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// line formats the result of one expression along with any requested
// echo and tree output. ok is false if the result is an error message.
func (a *app) line(ctx *prefix.Context, src string) (text string, ok bool) {
	opts := a.cfg.parseOptions()
	var b strings.Builder
	if a.echo || a.tree {
		if e, err := prefix.Parse(src, opts...); err == nil {
			if a.tree {
				fmt.Fprintf(&b, "%# v\n", pretty.Formatter(e))
			}
			if a.echo {
				b.WriteString(prefix.Source(e))
				b.WriteString(" : ")
			}
		}
	}
	r, err := ctx.Interpret(src, opts...)
	if err != nil {
		b.WriteString(err.Error())
		return b.String(), false
	}
	b.WriteString(r.String())
	return b.String(), true
}

// readLines reads the non-blank lines of a file, or of stdin if name is -.
func readLines(name string, stdin io.Reader) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPR",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := prefix.Lex(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", prefix.ParsePrefix, err)
			}
			w := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintln(w, tok)
			}
			return nil
		},
	}
}
