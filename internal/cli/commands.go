// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/bitcoin-systems/secp256k1"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (a *app) generatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generator",
		Short: "Print the secp256k1 base point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := secp256k1.Generator()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generator Point: %v\n", g)
			fmt.Fprintf(out, "Is generator on curve: %v\n", g.IsOnCurve())
			return nil
		},
	}
}

func (a *app) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <scalar-hex>...",
		Short: "Multiply the base point by each scalar",
		Long: `Multiply the base point by each of the given hex scalars.  The
multiplications run concurrently, bounded by --workers, and the results are
printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scalars := make([]secp256k1.Scalar, len(args))
			for i, arg := range args {
				k, err := secp256k1.ScalarFromHex(arg)
				if err != nil {
					return errors.Wrapf(err, "parsing scalar %d", i)
				}
				scalars[i] = k
			}

			results, err := multiplyBase(cmd.Context(), scalars, a.cfg.Workers,
				a.logger)
			if err != nil {
				return err
			}
			for _, p := range results {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

// multiplyBase computes k*G for every scalar using at most workers goroutines.
// The results are in the same order as scalars.
func multiplyBase(ctx context.Context, scalars []secp256k1.Scalar, workers int,
	logger *zap.Logger) ([]secp256k1.Point, error) {

	results := make([]secp256k1.Point, len(scalars))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, k := range scalars {
		i, k := i, k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := secp256k1.Generator().ScalarMult(k)
			if err != nil {
				return errors.Wrapf(err, "multiplying scalar %d", i)
			}
			logger.Debug("computed scalar multiple", zap.Int("index", i),
				zap.Stringer("scalar", k), zap.Stringer("point", p))
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <x1> <y1> <x2> <y2>",
		Short: "Add two affine points given as hex coordinates",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, err := parsePoint(args[0], args[1])
			if err != nil {
				return errors.Wrap(err, "first point")
			}
			p2, err := parsePoint(args[2], args[3])
			if err != nil {
				return errors.Wrap(err, "second point")
			}
			for i, p := range []secp256k1.Point{p1, p2} {
				if !p.IsOnCurve() {
					a.logger.Warn("operand is not on the curve",
						zap.Int("operand", i+1), zap.Stringer("point", p))
				}
			}

			sum, err := p1.Add(p2)
			if err != nil {
				return errors.Wrapf(err, "adding %v and %v", p1, p2)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

func (a *app) onCurveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oncurve <x> <y>",
		Short: "Report whether an affine point satisfies y^2 = x^3 + 7",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			onCurve := p.IsOnCurve()
			a.logger.Debug("checked curve membership", zap.Stringer("point", p),
				zap.Bool("on_curve", onCurve))
			fmt.Fprintln(cmd.OutOrStdout(), onCurve)
			return nil
		},
	}
}

// parsePoint decodes a pair of hex coordinates into an affine point.
func parsePoint(xHex, yHex string) (secp256k1.Point, error) {
	x, err := secp256k1.FieldElementFromHex(xHex)
	if err != nil {
		return secp256k1.Point{}, errors.Wrap(err, "x coordinate")
	}
	y, err := secp256k1.FieldElementFromHex(yHex)
	if err != nil {
		return secp256k1.Point{}, errors.Wrap(err, "y coordinate")
	}
	return secp256k1.NewPoint(x, y), nil
}
