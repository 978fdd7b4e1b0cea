package app

import (
	"context"
	"fmt"
	"time"

	"github.com/renpho-home/renpho-go/internal/config"
	"github.com/renpho-home/renpho-go/internal/prefs"
	"github.com/renpho-home/renpho-go/internal/ui"
	"github.com/renpho-home/renpho-go/renpho"
)

// Options configure the renpho-watch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/renpho-watch/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the renpho-watch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	if opts.PollEvery > 0 {
		cfg.Refresh = time.Duration(opts.PollEvery) * time.Second
	}

	client, err := renpho.NewClient(renpho.Config{
		Email:    cfg.Email,
		Password: cfg.Password,
		UserID:   cfg.UserID,
		Refresh:  cfg.Refresh,
		ProxyURL: cfg.ProxyURL,
	})
	if err != nil {
		return fmt.Errorf("init renpho client: %w", err)
	}
	defer client.Close()

	if err := client.ValidateCredentials(ctx); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	// The poller populates every cache before the first tick fires.
	client.StartPolling(ctx)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		PollTick:  cfg.Refresh,
		ThemeName: userPrefs.Theme,
		Units:     userPrefs.Units,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
