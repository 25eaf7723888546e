// Binary driverfactory opens pages with drivers managed by a
// driverfactory.Factory. It is mostly useful to check a driver setup and to
// try out selectors with the highlight command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/wanmail/driverfactory"
	"github.com/wanmail/driverfactory/config"
)

var version = "dev"

// factoryOptions are appended to the options of every Factory the commands
// create.
var factoryOptions []driverfactory.Option

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "driverfactory",
		Short:         "Start and drive browsers through a driver factory",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML settings file")
	flags.String("run-type", "", "Run type: local or remote (overrides the settings file)")
	flags.String("kind", driverfactory.Chrome.String(), "Browser kind to register")
	flags.String("driver-path", "", "Driver binary or directory (overrides the settings file)")
	flags.String("remote-url", "", "Selenium server URL (overrides the settings file)")
	flags.Bool("driver-output", false, "Copy the local driver process output to stderr")
	flags.AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newCmdOpen())
	cmd.AddCommand(newCmdHighlight())
	cmd.AddCommand(newCmdKinds())
	cmd.AddCommand(newCmdVersion())
	return cmd
}

// newFactory builds a Factory from the settings file and the persistent flags
// and registers a driver of the requested kind.
func newFactory(cmd *cobra.Command) (*driverfactory.Factory, error) {
	flags := cmd.Flags()
	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if flags.Changed("run-type") {
		cfg.RunType, _ = flags.GetString("run-type")
	}
	if flags.Changed("driver-path") {
		cfg.DriverPath, _ = flags.GetString("driver-path")
	}
	if flags.Changed("remote-url") {
		cfg.RemoteURL, _ = flags.GetString("remote-url")
	}

	var opts []driverfactory.Option
	if out, _ := flags.GetBool("driver-output"); out {
		opts = append(opts, driverfactory.WithDriverOutput(cmd.ErrOrStderr()))
	}
	opts = append(opts, factoryOptions...)
	f, err := driverfactory.New(cfg.Settings(), opts...)
	if err != nil {
		return nil, err
	}

	kindName, _ := flags.GetString("kind")
	kind, err := driverfactory.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	name, err := f.RegisterKind(kind)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("Using %s driver %q", f.RunType(), name)
	return f, nil
}

func main() {
	// glog reads its flags from the standard flag set; cobra parses them.
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "driverfactory: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}
