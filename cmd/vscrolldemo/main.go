// Command vscrolldemo renders a long synthetic feed through the
// virtual package, to exercise its windowing and jump-compensation
// behavior interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HamStudy/vscroll/internal/demo"
)

// CLIFlags holds all command-line flags.
type CLIFlags struct {
	itemCount    int
	itemSize     float64
	overscan     int
	reverse      bool
	debug        bool
	snapshotPath string
}

func parseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.IntVar(&flags.itemCount, "elements", envInt("VSCROLL_ELEMENT_COUNT", 10000), "Number of synthetic rows to generate")
	flag.Float64Var(&flags.itemSize, "item-size", envFloat("VSCROLL_ITEM_SIZE", 1), "Default row height estimate, in terminal lines")
	flag.IntVar(&flags.overscan, "overscan", envInt("VSCROLL_OVERSCAN", 5), "Number of offscreen rows kept mounted on each side")
	flag.BoolVar(&flags.reverse, "reverse", false, "Anchor layout to the end of the feed, like a chat transcript")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	flag.StringVar(&flags.snapshotPath, "snapshot", defaultSnapshotPath(), "Path to persist/restore measured row sizes")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vscrolldemo - interactive demo of the virtual list windowing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  vscrolldemo [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeyboard Shortcuts:\n")
		fmt.Fprintf(os.Stderr, "  j/k, ↓/↑    - scroll\n")
		fmt.Fprintf(os.Stderr, "  pgup/pgdn   - page scroll\n")
		fmt.Fprintf(os.Stderr, "  g/G         - top/bottom\n")
		fmt.Fprintf(os.Stderr, "  a           - append rows\n")
		fmt.Fprintf(os.Stderr, "  p           - prepend rows\n")
		fmt.Fprintf(os.Stderr, "  s           - settings (overscan)\n")
		fmt.Fprintf(os.Stderr, "  S           - save snapshot\n")
		fmt.Fprintf(os.Stderr, "  q/ctrl+c    - quit\n")
	}

	flag.Parse()
	return flags
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(name string, fallback float64) float64 {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return fallback
}

func defaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vscroll", "snapshot.yaml")
}

func main() {
	flags := parseFlags()
	logger := demo.NewLogger(flags.debug)

	if flags.snapshotPath != "" {
		if err := os.MkdirAll(filepath.Dir(flags.snapshotPath), 0o755); err != nil {
			logger.Warn().Err(err).Msg("could not create snapshot directory")
		}
	}

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	model, err := demo.NewModel(logger, flags.itemCount, flags.itemSize, flags.overscan, flags.reverse, flags.snapshotPath)
	if err != nil {
		log.Fatalf("failed to build demo model: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("error running program: %v", err)
	}
}
