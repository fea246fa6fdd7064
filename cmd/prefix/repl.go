package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFile = ".prefix_history"

var red = color.New(color.FgRed)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// prompter is the part of *liner.State used by the read-eval loop.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// history saves line history to a file at most once, whether the session
// ends normally or by a signal.
type history struct {
	path string
	once sync.Once
}

func (h *history) load(ln interface{ ReadHistory(io.Reader) (int, error) }) {
	if f, err := os.Open(h.path); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func (h *history) save(ln interface{ WriteHistory(io.Writer) (int, error) }) {
	h.once.Do(func() {
		if f, err := os.Create(h.path); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	})
}

func (a *app) repl(ctx context.Context, w io.Writer) error {
	home, _ := os.UserHomeDir()
	hist := &history{path: filepath.Join(home, historyFile)}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist.load(ln)
	defer hist.save(ln)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigc:
			// os.Exit skips deferred calls.
			hist.save(ln)
			ln.Close()
			os.Exit(130)
		case <-done:
		}
	}()

	return a.loop(ctx, ln, w)
}

// loop reads and evaluates lines until end of input or :quit.
func (a *app) loop(ctx context.Context, ln prompter, w io.Writer) error {
	pctx := a.context()
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}
		src := strings.TrimSpace(line)
		switch {
		case src == "":
			continue
		case strings.HasPrefix(src, ":"):
			switch strings.ToLower(src) {
			case ":quit", ":q":
				return nil
			case ":legacy":
				a.cfg.LegacySubstitution = !a.cfg.LegacySubstitution
				pctx = a.context()
				fmt.Fprintf(w, "legacy substitution %s\n", onoff(pctx.Legacy()))
			default:
				fmt.Fprintln(w, "unknown command. Type :quit to exit.")
			}
			continue
		}
		ln.AppendHistory(line)
		if s, ok := a.line(pctx, src); ok {
			fmt.Fprintln(w, s)
		} else {
			red.Fprintln(w, s)
		}
	}
}

func onoff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

var _ prompter = (*liner.State)(nil)
