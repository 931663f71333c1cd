// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cli implements the ecpoint command, a small tool for inspecting
// secp256k1 group arithmetic from the command line.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the resolved configuration and logger to the subcommands.
type app struct {
	cfg    Config
	logger *zap.Logger
}

// NewCommand returns the root ecpoint command with all subcommands attached.
func NewCommand() (*cobra.Command, error) {
	v := newViper()
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "ecpoint",
		Short:         "Inspect secp256k1 field and group arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger.Named(cmd.Name())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	if err := registerFlags(v, root.PersistentFlags()); err != nil {
		return nil, err
	}

	root.AddCommand(
		a.generatorCmd(),
		a.mulCmd(),
		a.addCmd(),
		a.onCurveCmd(),
	)
	return root, nil
}
