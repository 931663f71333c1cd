// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bitcoin-systems/secp256k1"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	gx  = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gy  = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	g2x = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	g2y = "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"
	g3x = "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
	g3y = "388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672"
)

// run executes the ecpoint command with args and returns what it wrote to
// stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd, err := NewCommand()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerator(t *testing.T) {
	stdout, _, err := run(t, "generator")
	require.NoError(t, err)
	require.Equal(t, "Generator Point: ("+gx+", "+gy+")\n"+
		"Is generator on curve: true\n", stdout)
}

func TestMul(t *testing.T) {
	stdout, _, err := run(t, "mul", "--workers", "2", "3", "0", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "("+g3x+", "+g3y+")\n"+
		"infinity\n"+
		"("+gx+", "+gy+")\n"+
		"("+g2x+", "+g2y+")\n", stdout)
}

func TestMulInvalidScalar(t *testing.T) {
	_, _, err := run(t, "mul", "1", "zz")
	require.Error(t, err)
	require.True(t, errors.Is(err, secp256k1.ErrInvalidHex))
	require.Contains(t, err.Error(), "parsing scalar 1")
}

func TestMulLogging(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"logfmt", []string{"level=debug", "computed scalar multiple"}},
		{"json", []string{`"level":"debug"`, `"msg":"computed scalar multiple"`}},
		{"console", []string{"debug", "computed scalar multiple"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, stderr, err := run(t, "mul", "--log-level", "debug",
				"--log-format", tt.format, "2")
			require.NoError(t, err)
			for _, want := range tt.want {
				require.Contains(t, stderr, want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	stdout, _, err := run(t, "add", gx, gy, g2x, g2y)
	require.NoError(t, err)
	require.Equal(t, "("+g3x+", "+g3y+")\n", stdout)

	// G + (-G) is the point at infinity.
	negGy := "b7c52588d95c3b9aa25b0403f1eef75702e84bb7597aabe663b82f6f04ef2777"
	stdout, _, err = run(t, "add", gx, gy, gx, negGy)
	require.NoError(t, err)
	require.Equal(t, "infinity\n", stdout)
}

func TestAddWarnsOffCurve(t *testing.T) {
	_, stderr, err := run(t, "add", "--log-format", "logfmt", "1", "0", "1", "0")
	require.Error(t, err)
	require.True(t, errors.Is(err, secp256k1.ErrInvalidPoint))
	require.Contains(t, stderr, "operand is not on the curve")
}

func TestOnCurve(t *testing.T) {
	stdout, _, err := run(t, "oncurve", gx, gy)
	require.NoError(t, err)
	require.Equal(t, "true\n", stdout)

	stdout, _, err = run(t, "oncurve", gx, g2y)
	require.NoError(t, err)
	require.Equal(t, "false\n", stdout)

	_, _, err = run(t, "oncurve", gx)
	require.Error(t, err)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("ECPOINT_WORKERS", "0")
	_, _, err := run(t, "generator")
	require.EqualError(t, err, "workers must be at least 1, got 0")

	t.Setenv("ECPOINT_WORKERS", "1")
	t.Setenv("ECPOINT_LOG_FORMAT", "xml")
	_, _, err = run(t, "generator")
	require.EqualError(t, err, `unsupported log format "xml"`)

	t.Setenv("ECPOINT_LOG_FORMAT", "json")
	t.Setenv("ECPOINT_LOG_LEVEL", "loud")
	_, _, err = run(t, "generator")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestMultiplyBaseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scalars := []secp256k1.Scalar{secp256k1.ScalarFromUint64(5)}
	_, err := multiplyBase(ctx, scalars, 1, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}
