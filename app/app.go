package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termpix/config"
	"termpix/controller"
	"termpix/device"
	tcelldev "termpix/device/tcell"
	"termpix/frame"
	"termpix/geometry"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// Builder creates the root widget for a terminal of the given size.
type Builder func(size geometry.Size, cfg config.Config) controller.Widget

// Run takes over the terminal, drives the widget made by build and returns
// the process exit code. Errors are printed to stderr once the terminal is
// restored.
func Run(ctx context.Context, cfg config.Config, build Builder) int {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "termpix: %v\n", ErrNotTerminal)
		return int(controller.ExitError)
	}

	logs, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termpix: %v\n", err)
		return int(controller.ExitError)
	}
	defer logs.Close()
	log.SetOutput(logs)
	defer log.SetOutput(os.Stderr)

	if cfg.RestoreColors {
		defer restoreColors()()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	dev, err := tcelldev.New(tcelldev.Options{Mouse: cfg.Mouse})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termpix: failed to open terminal: %v\n", err)
		return int(controller.ExitError)
	}
	exit, err := runAndClose(ctx, dev, cfg, build)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termpix: %v\n", err)
	}
	return int(exit)
}

// runAndClose closes dev on every way out, panics included, so the terminal
// is restored before anything is printed.
func runAndClose(ctx context.Context, dev device.Device, cfg config.Config, build Builder) (controller.Exit, error) {
	defer dev.Close()
	return RunDevice(ctx, dev, cfg, build)
}

// RunDevice drives the widget on an already opened device.
func RunDevice(ctx context.Context, dev device.Device, cfg config.Config, build Builder) (controller.Exit, error) {
	log.Printf("app: %s", cfg)
	widget := build(dev.Size(), cfg)
	return controller.Run(ctx, dev, widget, controller.Config{
		RefreshInterval: cfg.RefreshInterval,
		Clear:           frame.Pixel{Glyph: ' ', Style: cfg.ClearStyle()},
	})
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog opens path for appending. Without a path logs are discarded:
// anything written to the terminal would corrupt the screen.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return file, nil
}

// restoreColors remembers the terminal's default colors and returns the
// function that puts them back.
func restoreColors() func() {
	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	return func() {
		output := termenv.NewOutput(os.Stdout)
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}
}
