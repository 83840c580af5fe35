package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/tictoc/pkg"
)

// Version prints the program name and version.
type Version struct {
	Verbose bool `help:"Include the program description and author" short:"v"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	stdout, _ := outputFrom(ctx)

	if _, err := fmt.Fprintln(stdout, pkg.Name, pkg.Version()); err != nil {
		return err
	}

	if !v.Verbose {
		return nil
	}

	if _, err := fmt.Fprintln(stdout, pkg.Description); err != nil {
		return err
	}

	for _, a := range pkg.Author {
		if _, err := fmt.Fprintf(stdout, "%s <%s>\n", a.Name, a.Email); err != nil {
			return err
		}
	}

	return nil
}
