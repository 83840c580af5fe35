package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/alecthomas/kong"
)

// testCLI mirrors the command layout of the tictoc CLI.
type testCLI struct {
	Init    Init    `cmd:""`
	Version Version `cmd:""`
	Demo    Demo    `cmd:"" default:"withargs"`
}

// parse parses args against testCLI and returns the populated model and a
// context carrying the kong context and buffered output streams.
func parse(
	t *testing.T,
	vars kong.Vars,
	args ...string,
) (*testCLI, context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var cli testCLI

	parser, err := kong.New(&cli,
		Vars().CloneWith(vars),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit(%d)", code) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer

	ctx := WithContext(context.Background(), ktx)
	ctx = WithOutput(ctx, &stdout, &stderr)

	return &cli, ctx, &stdout, &stderr
}

func TestOutputFrom(t *testing.T) {
	stdout, stderr := outputFrom(context.Background())
	if stdout != os.Stdout || stderr != os.Stderr {
		t.Error("outputFrom without WithOutput should return process streams")
	}

	var a, b bytes.Buffer

	stdout, stderr = outputFrom(WithOutput(context.Background(), &a, &b))
	if stdout != &a || stderr != &b {
		t.Error("outputFrom should return the writers given to WithOutput")
	}
}

func TestKongContextFrom(t *testing.T) {
	if kongContextFrom(context.Background()) != nil {
		t.Error("expected nil kong context")
	}

	_, ctx, _, _ := parse(t, nil, "version")
	if kongContextFrom(ctx) == nil {
		t.Error("expected kong context stored by WithContext")
	}
}

func TestVars(t *testing.T) {
	want := kong.Vars{
		"demoLimit":        "40",
		"reportFormatEnum": "table,json,yaml",
		"openPolicyEnum":   "exclude,flag",
		"openPolicy":       "exclude",
	}

	got := Vars()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Vars()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestError(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrWriteConfig.With(slog.String("file", "x.yaml")).Wrap(cause)

	if got, want := err.Error(), "write configuration file: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrWriteConfig) {
		t.Error("derived error should match its sentinel")
	}

	if errors.Is(err, ErrReport) {
		t.Error("derived error should not match another sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("derived error should match its cause")
	}

	var buf bytes.Buffer

	slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	})).Error("failed", slog.Any("err", err))

	want := `level=ERROR msg=failed err.error="write configuration file" err.cause="disk full" err.file=x.yaml` + "\n"
	if buf.String() != want {
		t.Errorf("log output = %q, want %q", buf.String(), want)
	}

	if len(ErrWriteConfig.attrs) != 0 {
		t.Error("With must not modify the sentinel")
	}
}
