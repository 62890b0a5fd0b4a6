package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adrianflutur/registry"
	"github.com/adrianflutur/registry/observability"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Walk the demo application through its lifecycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig([]string{envFile}, paramsFile, logLevel)
		if err != nil {
			printError("load config", err)
			return err
		}
		return runDemo(cmd.OutOrStdout(), cfg)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Resolve the demo application and print its dependency graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig([]string{envFile}, paramsFile, logLevel)
		if err != nil {
			printError("load config", err)
			return err
		}
		dot, _ := cmd.Flags().GetBool("dot")
		return printDemoGraph(cmd.OutOrStdout(), cfg, dot)
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params <file>",
	Short: "Load a params file and print it in document order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := registry.ParamsFromFile(args[0])
		if err != nil {
			printError("load params", err)
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.Summary())
		return nil
	},
}

func init() {
	graphCmd.Flags().Bool("dot", false, "print Graphviz DOT instead of text")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(paramsCmd)
}

func newDemoRegistry(out io.Writer, cfg *demoConfig) (*registry.Registry, error) {
	opts, err := observability.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, registry.WithLogger(observability.NewLogger(os.Stderr, cfg.LogLevel)))

	r := registry.New(opts...)
	if err := r.Apply(appModule(out)); err != nil {
		return nil, err
	}
	return r, nil
}

func runDemo(out io.Writer, cfg *demoConfig) error {
	r, err := newDemoRegistry(out, cfg)
	if err != nil {
		return err
	}

	h, err := registry.Get[*Handler](r, cfg.Params)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "handler %s on store %s (%s, timeout %s)\n",
		h.Route, h.Store.ID, h.Store.Config.Name, h.Store.Config.Timeout)

	if err := registry.RefreshInstance[*Store](r); err != nil {
		return err
	}
	h, err = registry.Get[*Handler](r)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "after refresh: store %s\n", h.Store.ID)

	r.FprintGraph(out)

	return r.Clear()
}

func printDemoGraph(out io.Writer, cfg *demoConfig, dot bool) error {
	r, err := newDemoRegistry(io.Discard, cfg)
	if err != nil {
		return err
	}
	if _, err := registry.Get[*Handler](r, cfg.Params); err != nil {
		return err
	}

	if dot {
		r.FprintGraphDOT(out)
	} else {
		r.FprintGraph(out)
	}
	return r.Clear()
}
