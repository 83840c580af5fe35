package cmd

import (
	"context"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/tictoc/log"
	"github.com/ardnew/tictoc/profile"
)

// configIndent is the number of spaces used for indentation in the generated
// configuration file.
const configIndent = 2

// Init generates a configuration file containing the current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: configuration path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalWithOptions(
		configValues(ktx),
		yaml.Indent(configIndent),
	)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
		slog.Int("bytes", len(data)),
	)

	return nil
}

// configValues collects the value of every persistable flag in the
// application, in declaration order. Flags that were not parsed (such as
// those of commands other than the one being run) fall back to their
// declared default.
func configValues(ktx *kong.Context) yaml.MapSlice {
	var (
		out  yaml.MapSlice
		seen = map[string]bool{}
	)

	ignore := []string{"help", "force", profile.Tag}

	for _, flag := range allFlags(ktx.Model.Node) {
		if flag.Hidden || seen[flag.Name] ||
			slices.ContainsFunc(ignore, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
			continue
		}

		seen[flag.Name] = true

		if v, ok := flagValue(ktx, flag); ok {
			out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return out
}

// allFlags returns the flags of n and all of its descendants.
func allFlags(n *kong.Node) []*kong.Flag {
	flags := slices.Clone(n.Flags)

	for _, child := range n.Children {
		flags = append(flags, allFlags(child)...)
	}

	return flags
}

// flagValue returns the effective value of flag, or false if it has neither
// a value nor a default.
func flagValue(ktx *kong.Context, flag *kong.Flag) (any, bool) {
	val := ktx.FlagValue(flag)

	if b, ok := val.(bool); ok {
		return b, true
	}

	if val != nil && !reflect.ValueOf(val).IsZero() {
		return val, true
	}

	if flag.Default != "" {
		return flag.Default, true
	}

	return nil, false
}
