/*
Copyright 2024 The AzMig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd assembles the azmig command line. The validate command is the
// workhorse; everything else is plumbing around it.
package cmd

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// Exit codes of the azmig binary. Provider failures surface as outcomes in
// the report, not as exit code 2; only broken inputs do.
const (
	exitOK            = 0
	exitFailuresFound = 1
	exitBadInput      = 2
)

// errFailuresFound marks a run that completed but reported at least one
// failed project or machine.
var errFailuresFound = errors.New("validation reported failures")

// badInputError marks unusable user input, like an unreadable plan file.
// Configuration problems carry their own error type, see validation/config.
type badInputError struct{ err error }

func (e badInputError) Error() string { return e.err.Error() }
func (e badInputError) Unwrap() error { return e.err }

// Execute runs the azmig command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := RootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errFailuresFound) {
			return exitFailuresFound
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var bad badInputError
		if errors.As(err, &bad) || config.IsConfigError(err) {
			return exitBadInput
		}
		return exitFailuresFound
	}
	return exitOK
}

// RootCmd builds the root of the azmig command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "azmig",
		Short: "Pre-flight validation for bulk Azure Migrate plans",
		Long: `azmig validates a declared migration plan against live Azure before any
replication starts: the landing zone of every migrate project first, then
every declared machine against its target resources.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	return root
}
