// Package cli — list.go implements the "workorders list" command.
//
// Where the root command prints a machine-oriented JSON envelope, list
// renders a human-readable table of work orders. The rows come from a
// live fetch by default, or from a local snapshot of the API response via
// --input. Snapshot files may contain // comments and trailing commas;
// they are cleaned up with tidwall/jsonc before parsing, since snapshots
// tend to be hand-annotated during debugging.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/innergy-tools/workorders/internal/config"
	"github.com/innergy-tools/workorders/internal/innergy"
	"github.com/innergy-tools/workorders/internal/model"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// input renders from a local snapshot file instead of fetching.
	input string

	// status filters rows by work-order status, case-insensitively.
	// Empty means no filter.
	status string
}

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work orders as a table",
		Long: `List work orders in a human-readable table.

By default the work orders are fetched live from the API (requiring the
same .env file as the root command). With --input, a local snapshot of the
API response is rendered instead; the snapshot may contain comments.

Examples:
  workorders list
  workorders list --status "In Progress"
  workorders list --input snapshot.json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), currentOptions(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "",
		"Render from a local API response snapshot instead of fetching")
	cmd.Flags().StringVar(&flags.status, "status", "",
		"Only show work orders with this status (case-insensitive)")

	return cmd
}

// runList gathers work orders (live or from a snapshot), applies the
// status filter, and prints the table. Unlike the fetch entrypoint, list
// errors surface through the normal Execute path on stderr.
func runList(ctx context.Context, out io.Writer, opts runOptions, flags *listFlags) error {
	settings, err := config.Resolve(config.Flags{
		EnvPath:    opts.envPath,
		ConfigPath: opts.configPath,
	})
	if err != nil {
		return err
	}
	logger := newLogger(settings.LogLevel, opts.verbose)

	var items []json.RawMessage
	if flags.input != "" {
		items, err = loadSnapshot(flags.input)
	} else {
		var page *innergy.WorkOrderPage
		page, err = fetchPage(ctx, settings, logger)
		if page != nil {
			items = page.Items
		}
	}
	if err != nil {
		return err
	}

	orders, err := model.DecodeWorkOrders(items)
	if err != nil {
		return err
	}

	if flags.status != "" {
		filtered := make([]model.WorkOrder, 0, len(orders))
		for _, wo := range orders {
			if strings.EqualFold(wo.Status, flags.status) {
				filtered = append(filtered, wo)
			}
		}
		orders = filtered
	}

	printWorkOrderTable(out, orders)
	return nil
}

// loadSnapshot reads a saved API response from disk. Comments and trailing
// commas are stripped before parsing, the same treatment editors give
// JSONC configuration files.
func loadSnapshot(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	cleanJSON := jsonc.ToJSON(data)

	var page innergy.WorkOrderPage
	if err := json.Unmarshal(cleanJSON, &page); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}
	return page.Items, nil
}

// printWorkOrderTable renders work orders as a fixed-width text table.
//
// The table format is:
//
//	NUMBER       NAME                           STATUS          STEP            PROJECT
//	WO-1001      Kitchen cabinets               In Progress     CNC             Smith Residence
func printWorkOrderTable(w io.Writer, orders []model.WorkOrder) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No work orders found.")
		return
	}

	fmt.Fprintf(w, "%-12s %-30s %-15s %-15s %s\n",
		"NUMBER", "NAME", "STATUS", "STEP", "PROJECT")

	for _, wo := range orders {
		fmt.Fprintf(w, "%-12s %-30s %-15s %-15s %s\n",
			wo.Number,
			truncate(wo.Name, 30),
			wo.Status,
			wo.Step,
			wo.ProjectName,
		)
	}
}

// truncate shortens s to max runes, marking the cut with an ellipsis so
// long work-order names do not break the column layout.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
