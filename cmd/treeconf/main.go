// Command treeconf inspects property-tree config files: it parses any
// supported format (JSON, YAML, INI, XML, info) and can dump the resulting
// tree or just check that the files parse.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	treeconf "github.com/reoring/treeconf"
	"github.com/reoring/treeconf/ptree"
)

func main() {
	root := &cobra.Command{
		Use:           "treeconf",
		Short:         "Inspect property-tree config files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(dumpCmd(), checkCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "treeconf:", err)
		os.Exit(1)
	}
}

func dumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a config file and print its property tree in info syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sourceFor(args[0], format)
			if err != nil {
				return err
			}
			tree, err := src.Load()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return ptree.WriteInfo(cmd.OutOrStdout(), tree)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format (auto|json|yaml|ini|xml|info)")
	return cmd
}

func checkCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that config files parse into a property tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				src, err := sourceFor(path, format)
				if err == nil {
					_, err = src.Load()
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format (auto|json|yaml|ini|xml|info)")
	return cmd
}

func sourceFor(path, format string) (treeconf.Source, error) {
	f, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == treeconf.FormatAuto {
		return treeconf.File(path), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return treeconf.Bytes(b, f), nil
}

func parseFormat(s string) (treeconf.Format, error) {
	switch s {
	case "", "auto":
		return treeconf.FormatAuto, nil
	case "json":
		return treeconf.FormatJSON, nil
	case "yaml", "yml":
		return treeconf.FormatYAML, nil
	case "ini":
		return treeconf.FormatINI, nil
	case "xml":
		return treeconf.FormatXML, nil
	case "info":
		return treeconf.FormatInfo, nil
	}
	return treeconf.FormatAuto, fmt.Errorf("unknown format %q", s)
}
