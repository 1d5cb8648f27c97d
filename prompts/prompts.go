// Package prompts loads per-player system prompts. Prompt files live in
// <dir>/<game>/<name>; the "default" coin flip prompt also ships embedded so
// the binary runs without a prompts directory.
package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default_coinflip.txt
var defaultCoinFlip string

// Load reads the system prompt for game/name from dir. A missing file is
// fatal, except for coinflip's "default" which falls back to the embedded
// text.
func Load(dir, game, name string) (string, error) {
	path := filepath.Join(dir, game, name)
	b, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(b)), nil
	}
	if errors.Is(err, os.ErrNotExist) && game == "coinflip" && name == "default" {
		return strings.TrimSpace(defaultCoinFlip), nil
	}
	return "", fmt.Errorf("system prompt %s: %w", path, err)
}
