package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golovatskygroup/mcp-frontend/internal/config"
	"github.com/golovatskygroup/mcp-frontend/internal/journal"
	"github.com/golovatskygroup/mcp-frontend/internal/logging"
	"github.com/golovatskygroup/mcp-frontend/internal/server"
)

// errToolFailed is returned by call when the tool result is flagged as an error.
// The result text has already been printed.
var errToolFailed = errors.New("tool reported an error")

type rootOptions struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	serve := newServeCmd(opts)
	root := &cobra.Command{
		Use:           "mcp-frontend",
		Short:         "MCP server with frontend development tools",
		Long:          `mcp-frontend serves React, Tailwind CSS, package.json and React Flow tools to MCP clients over stdio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file loaded before MCP_FRONTEND_* variables are read")

	root.AddCommand(serve, newToolsCmd(opts), newCallCmd(opts), newHistoryCmd(opts))
	return root
}

func (o *rootOptions) load() (config.Config, error) {
	if o.envFile != "" {
		if err := config.LoadDotEnv(o.envFile); err != nil {
			return config.Config{}, fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}
	return config.Load(o.configPath)
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdin/stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := logging.New(cfg.Log.Level)
			defer func() { _ = log.Sync() }()

			srv, err := server.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			defer func() {
				if err := srv.Close(); err != nil {
					log.Warn("shutdown", "error", err)
				}
			}()
			return srv.Run(cmd.Context())
		},
	}
}

func newToolsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cfg.Journal.Path = ""
			b, err := server.NewBackend(cfg, logging.Nop())
			if err != nil {
				return err
			}
			defer b.Close()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(b.Dispatcher.ListTools())
			}

			cat := b.Dispatcher.Catalog()
			for _, c := range cat.Categories() {
				fmt.Fprintf(out, "%s (%d)\n", c.Name, len(c.Tools))
				for _, s := range cat.Search("", c.Name, len(c.Tools)) {
					fmt.Fprintf(out, "  %-34s %s\n", s.Name, s.Description)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print full tool definitions as JSON")
	return cmd
}

func newCallCmd(opts *rootOptions) *cobra.Command {
	var rawArgs string
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Run one tool and print its result",
		Example: `  mcp-frontend call tailwind_color_palette --args '{"primary_color":"emerald"}'
  echo '{"component_name":"Card"}' | mcp-frontend call react_component_generator --args -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rawArgs == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read arguments: %w", err)
				}
				rawArgs = string(data)
			}
			if s := strings.TrimSpace(rawArgs); s != "" && !json.Valid([]byte(s)) {
				return fmt.Errorf("--args is not valid JSON")
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := logging.New(cfg.Log.Level)
			defer func() { _ = log.Sync() }()

			b, err := server.NewBackend(cfg, log)
			if err != nil {
				return err
			}
			defer b.Close()

			res := b.Dispatcher.CallTool(cmd.Context(), args[0], json.RawMessage(rawArgs))
			fmt.Fprintln(cmd.OutOrStdout(), res.Text())
			if res.IsError {
				return errToolFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&rawArgs, "args", "a", "{}", "Tool arguments as a JSON object, or - to read them from stdin")
	return cmd
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		tool   string
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent tool calls from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Journal.Path == "" {
				return errors.New("no journal configured (set journal.path or MCP_FRONTEND_JOURNAL_PATH)")
			}
			if _, err := os.Stat(cfg.Journal.Path); err != nil {
				return fmt.Errorf("journal %s: %w", cfg.Journal.Path, err)
			}

			j, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer j.Close()

			entries, err := j.Recent(cmd.Context(), tool, limit)
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), entries, asJSON)
		},
	}
	cmd.Flags().StringVarP(&tool, "tool", "t", "", "Only show calls of this tool")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of rows")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print rows as JSON")
	return cmd
}

func printHistory(w io.Writer, entries []journal.Entry, asJSON bool) error {
	if asJSON {
		if entries == nil {
			entries = []journal.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No calls recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTOOL\tOUTCOME\tDURATION\tERROR")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dms\t%s\n",
			e.ExecutedAt.Local().Format("2006-01-02 15:04:05"), e.Tool, e.Outcome, e.DurationMs, oneLine(e.Error, 60))
	}
	return tw.Flush()
}

func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}
