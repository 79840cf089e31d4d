package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/analytics/analytics"
	"github.com/kbukum/analytics/config"
	"github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/integrations"
	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/observability"
	"github.com/kbukum/analytics/provider"
)

// snippetCall is one line of replay input, shaped like a queued snippet call.
type snippetCall struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// pageState is the JSON output of a replay.
type pageState struct {
	Scripts []string                  `json:"scripts"`
	Queues  map[string][]host.Command `json:"queues"`
	Globals map[string]any            `json:"globals"`
}

func newCmdReplay(a *app) *cobra.Command {
	var (
		input  string
		page   string
		output string
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay snippet calls through the configured providers",
		Long: `Initialize the providers listed in the config file against a page, replay
JSON-lines snippet calls such as {"method":"track","args":["Signed Up",{"plan":"pro"}]},
then print the scripts, command queues and globals the providers produced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				return errors.MissingField("config")
			}
			if output != "text" && output != "json" {
				return errors.Validation(fmt.Sprintf("output must be text or json (got: %s)", output))
			}

			in := cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			if page == "" {
				page = a.cfg.Page
			}
			return a.replay(cmd, in, page, output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON-lines file of snippet calls, - for stdin")
	cmd.Flags().StringVar(&page, "url", "", "Page URL the providers load into (default: config page)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json)")
	return cmd
}

func (a *app) replay(cmd *cobra.Command, in io.Reader, page, output string) error {
	ctx := cmd.Context()

	entries, err := config.LoadProviders(a.configPath)
	if err != nil {
		return err
	}
	doc, err := host.NewDocument(page)
	if err != nil {
		return errors.Validation(err.Error()).WithCause(err)
	}

	reg := provider.NewRegistry()
	integrations.Register(reg)

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}
	client := analytics.New(
		analytics.WithRegistry(reg),
		analytics.WithDocument(doc),
		analytics.WithTimeout(a.cfg.Timeout),
		analytics.WithLogger(a.log.WithComponent("analytics")),
		analytics.WithMetrics(metrics),
		analytics.WithTracing(serviceName),
	)
	if err := client.Initialize(ctx, entries.Settings()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	line, calls := 0, 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var call snippetCall
		if err := json.Unmarshal(raw, &call); err != nil {
			return errors.Validation(fmt.Sprintf("line %d: %v", line, err)).WithCause(err)
		}
		if err := client.Call(ctx, call.Method, call.Args...); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		calls++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := client.Flush(ctx); err != nil && !errors.HasCode(err, errors.ErrCodeFlushTimeout) {
		return err
	}
	a.log.Info("replay finished", map[string]interface{}{
		logger.FieldCount: calls,
		"providers":       len(client.Providers()),
	})

	if output == "json" {
		return writeJSON(cmd.OutOrStdout(), doc)
	}
	return writeText(cmd.OutOrStdout(), doc)
}

func snapshotPage(doc *host.Document) pageState {
	state := pageState{
		Scripts: doc.Scripts(),
		Queues:  make(map[string][]host.Command),
		Globals: make(map[string]any),
	}
	for _, name := range doc.Queues() {
		state.Queues[name] = doc.Queue(name).Commands()
	}
	for _, name := range doc.Globals() {
		state.Globals[name], _ = doc.Global(name)
	}
	return state
}

func writeJSON(w io.Writer, doc *host.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshotPage(doc))
}

func writeText(w io.Writer, doc *host.Document) error {
	if err := doc.Render(w); err != nil {
		return err
	}
	fmt.Fprintln(w)

	state := snapshotPage(doc)
	for _, name := range doc.Queues() {
		fmt.Fprintf(w, "%s:\n", name)
		for _, c := range state.Queues[name] {
			b, err := json.Marshal(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s\n", b)
		}
	}

	for _, name := range doc.Globals() {
		b, err := json.Marshal(state.Globals[name])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s = %s\n", name, b)
	}
	return nil
}
