// Package cli — fetch.go implements the end-to-end run performed by the
// bare root command: resolve settings, load the dotenv file, look up the
// API key, call the Innergy API once, and print a result envelope.
//
// The envelope contract is absolute: every failure along the way is caught
// here and rendered as {"success": false, "message": ...} on stdout. The
// function never returns an error for a run outcome, so the process exits
// 0 whether the fetch succeeded or not.
package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/innergy-tools/workorders/internal/config"
	"github.com/innergy-tools/workorders/internal/envfile"
	"github.com/innergy-tools/workorders/internal/innergy"
	"github.com/innergy-tools/workorders/internal/model"
	"github.com/innergy-tools/workorders/internal/result"
)

// runFetch performs one end-to-end run and writes exactly one JSON
// envelope to out.
func runFetch(ctx context.Context, out io.Writer, opts runOptions) error {
	settings, err := config.Resolve(config.Flags{
		EnvPath:    opts.envPath,
		ConfigPath: opts.configPath,
	})
	if err != nil {
		return result.Render(out, result.Failure(err))
	}

	logger := newLogger(settings.LogLevel, opts.verbose)
	logger.Debug().
		Str("envPath", settings.EnvPath).
		Str("baseURL", settings.BaseURL).
		Dur("timeout", settings.Timeout).
		Msg("settings resolved")

	page, err := fetchPage(ctx, settings, logger)
	if err != nil {
		return result.Render(out, result.Failure(err))
	}

	return result.Render(out, result.Success(page.Items))
}

// fetchPage runs the shared pipeline: dotenv file → API key → one GET.
// The list command reuses it for live fetches.
func fetchPage(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*innergy.WorkOrderPage, error) {
	env, err := envfile.Load(settings.EnvPath)
	if err != nil {
		return nil, err
	}
	// Log the key count only — never the values, they are credentials.
	logger.Debug().Str("path", settings.EnvPath).Int("keys", len(env)).
		Msg("environment file loaded")

	apiKey := env["API_KEY"]
	if apiKey == "" {
		return nil, model.NewRunError(model.KindMissingConfig, "API_KEY not found in .env file")
	}

	client := innergy.NewClient(innergy.Options{
		BaseURL: settings.BaseURL,
		Timeout: settings.Timeout,
		Logger:  logger,
	})
	return client.FetchWorkOrders(ctx, apiKey)
}
