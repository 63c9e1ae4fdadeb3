package tui

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/jmylchreest/themedit/internal/config"
)

// copyText copies text to the system clipboard.
// A configured command wins; otherwise the platform clipboard is used, and
// terminals without one (SSH sessions) get an OSC 52 sequence.
func copyText(text string, cfg *config.Config) error {
	if cmd := configuredClipboardCommand(cfg); cmd != "" {
		return runClipboardCommand(cmd, text)
	}

	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}

	_, err := osc52.New(text).WriteTo(os.Stderr)
	return err
}

// configuredClipboardCommand returns the clipboard command from config, if any.
func configuredClipboardCommand(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Clipboard.Command)
}

// runClipboardCommand runs cmd with text as stdin.
func runClipboardCommand(cmd, text string) error {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return fmt.Errorf("invalid clipboard command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := exec.CommandContext(ctx, parts[0], parts[1:]...)
	c.Stdin = strings.NewReader(text)

	return c.Run()
}
