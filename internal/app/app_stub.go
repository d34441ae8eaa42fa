//go:build !ebiten

package app

import (
	"context"

	"github.com/charmbracelet/log"

	"spanmaze/internal/config"
)

// Run reports ErrNoWindow in headless builds.
func Run(context.Context, *config.Config, int64, *log.Logger) error {
	return ErrNoWindow
}
