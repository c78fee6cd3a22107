package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stracciatella/internal/config"
	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/launcher"
	"github.com/Faultbox/stracciatella/internal/logger"
	"github.com/Faultbox/stracciatella/internal/stracciatella"
)

type rootOptions struct {
	home     string
	logLevel string
	fs       afero.Fs
}

func (o *rootOptions) env() stracciatella.Env {
	env := stracciatella.DefaultEnv()
	if o.fs != nil {
		env.Fs = o.fs
	}
	env.Home.Override = o.home
	return env
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithFs(nil)
}

func newRootCmdWithFs(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	root := &cobra.Command{
		Use:           "ja2opts",
		Short:         "Inspect and edit the ja2.json engine settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(opts.logLevel, "")
		},
	}
	root.PersistentFlags().StringVar(&opts.home, "home", "", "Use this directory instead of the platform home (~/.ja2)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newShowCmd(opts),
		newSaveCmd(opts),
		newInitCmd(opts),
		newExeCmd(),
	)
	return root
}

func newShowCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [-- engine switches]",
		Short: "Print the merged engine options",
		Example: `  ja2opts show
  ja2opts show --format json -- --res 1024x768 --mods a,b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := stracciatella.Build(root.env(), engineArgv(args))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or json)")
	return cmd
}

func newSaveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "save [-- engine switches]",
		Short:   "Merge engine switches into ja2.json",
		Example: `  ja2opts save -- --datadir /games/ja2 --resversion GERMAN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := root.env()
			opts, err := stracciatella.Build(env, engineArgv(args))
			if err != nil {
				return err
			}
			if err := config.NewStore(env.Fs).Write(opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Saved"), config.Path(opts.StracciatellaHome))
			return nil
		},
	}
}

func newInitCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the home directory and an empty ja2.json if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := root.env()
			home, err := env.Home.Find()
			if err != nil {
				return err
			}
			if _, err := config.NewStore(env.Fs).EnsureExistence(home); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Path(home))
			return nil
		},
	}
}

func newExeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exe <launcher-path>",
		Short: "Print the game executable belonging to a launcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), launcher.FindExecutable(args[0]))
			return nil
		},
	}
}

// engineArgv prepends the program name the pipeline expects.
func engineArgv(args []string) []string {
	return append([]string{"ja2"}, args...)
}

func render(w io.Writer, opts *engine.Options, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(opts)
	case "json":
		data, err := config.Encode(opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unknown format %q, expected yaml or json", format)
	}
}
