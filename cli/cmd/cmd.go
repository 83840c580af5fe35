package cmd

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/tictoc/demo"
	"github.com/ardnew/tictoc/prof"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	outputKey struct{}
	output    struct{ stdout, stderr io.Writer }
)

// WithOutput returns a new context.Context carrying the writers used by
// commands for results (stdout) and diagnostics (stderr).
func WithOutput(ctx context.Context, stdout, stderr io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, output{stdout, stderr})
}

// outputFrom returns the writers stored by [WithOutput], substituting the
// process streams for any that are missing.
func outputFrom(ctx context.Context) (stdout, stderr io.Writer) {
	out, _ := ctx.Value(outputKey{}).(output)

	stdout, stderr = out.stdout, out.stderr
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return stdout, stderr
}

// Vars returns the kong variables interpolated into command flag tags.
func Vars() kong.Vars {
	formats := make([]string, len(prof.Formats))
	for i, f := range prof.Formats {
		formats[i] = f.String()
	}

	return kong.Vars{
		"demoLimit":        strconv.Itoa(demo.DefaultLimit),
		"reportFormatEnum": strings.Join(formats, ","),
		"openPolicyEnum":   prof.OpenExclude.String() + "," + prof.OpenFlag.String(),
		"openPolicy":       prof.DefaultOpenPolicy.String(),
	}
}
