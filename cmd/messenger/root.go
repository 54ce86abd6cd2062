package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/odic/config"
	"github.com/sghaida/odic/di"
	"github.com/sghaida/odic/logging"
	"github.com/sghaida/odic/messenger"
)

func newRootCmd(version string) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "messenger",
		Short:         "Dispatch messages through a dependency-injected messenger",
		Long:          `Wires an encryptor and a logger into a messenger with the di container, then dispatches a message.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (YAML); ODI_* environment variables override it")

	root.AddCommand(newDispatchCmd(&cfgFile), newBindingsCmd(&cfgFile))
	return root
}

// container is the wired composition root for one command invocation.
type container struct {
	cfg      config.Config
	log      *zap.Logger
	resolver *di.Resolver
}

// wire loads config, builds the application logger on errOut and registers the
// messenger graph, with encryptor and console output going to out.
func wire(cfgFile string, out, errOut io.Writer) (*container, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log, errOut)
	if err != nil {
		return nil, err
	}

	reg := di.NewRegistry(di.WithOverwritePolicy(cfg.OverwritePolicy()))
	if err := messenger.Register(reg, messenger.OptionsFromConfig(cfg, out, log)); err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("validate container: %w", err)
	}

	return &container{
		cfg:      cfg,
		log:      log,
		resolver: di.NewResolver(reg, di.WithLogger(log)),
	}, nil
}
