package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		setup   func(t *testing.T, path string)
		wantErr error
	}{
		{
			name: "create_new_config",
			args: []string{"init"},
		},
		{
			name: "overwrite_existing_with_force",
			args: []string{"init", "--force"},
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "fail_without_force",
			args: []string{"init"},
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			cli, ctx, _, _ := parse(t, kong.Vars{ConfigIdentifier: confPath}, tt.args...)

			err := cli.Init.Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(content, &got); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, content)
			}

			// Values keep their flag types, so limit decodes as an integer.
			want := map[string]string{
				"limit":       "40",
				"report":      "aggregated",
				"format":      "table",
				"open-policy": "exclude",
				"watch":       "false",
			}

			for k, v := range want {
				if s := fmt.Sprint(got[k]); s != v {
					t.Errorf("config[%q] = %#v, want %s", k, got[k], v)
				}
			}

			for _, k := range []string{"help", "force", "where", "match"} {
				if _, ok := got[k]; ok {
					t.Errorf("config should not contain %q", k)
				}
			}
		})
	}
}

func TestConfigValues_Order(t *testing.T) {
	_, ctx, _, _ := parse(t, kong.Vars{ConfigIdentifier: "unused"}, "demo", "--limit", "7")

	var keys []string
	for _, item := range configValues(kongContextFrom(ctx)) {
		keys = append(keys, item.Key.(string))
	}

	want := []string{"verbose", "limit", "report", "format", "open-policy", "watch"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}

	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
