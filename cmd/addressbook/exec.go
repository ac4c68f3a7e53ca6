/*
   Copyright 2025 The tp Authors

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

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tanruiquan/tp/abcore/logic"
	"github.com/tanruiquan/tp/cmd/addressbook/ui"
)

func runShell(ctx context.Context, opts *options) error {
	// Console logging would draw over the shell.
	logger := opts.logger
	if opts.cfg.Logging.File == "" {
		logger = zap.NewNop()
	}

	a, err := bootstrap(ctx, opts.cfg, logger, opts.verbose)
	if err != nil {
		return err
	}
	defer a.close()

	p := tea.NewProgram(ui.New(ctx, a.logic), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

func execCmd(opts *options) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run command lines and print their results",
		Long: `Runs each argument as one command line, in order, and prints the
result of each. Execution stops at the first failing command.`,
		Example: `  addressbook exec "add n/John Doe p/98765432 e/johnd@example.com h/@johndoe m/CS2103T"
  addressbook exec --stats "find n/alex" "list"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), opts.cfg, opts.logger, opts.verbose)
			if err != nil {
				return err
			}
			defer a.close()

			runErr := runLines(cmd.Context(), cmd, a.logic, args)
			if stats {
				if err := logic.WriteStats(cmd.OutOrStdout(), a.registry); err != nil {
					return err
				}
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "Print command metrics after running")
	return cmd
}

func runLines(ctx context.Context, cmd *cobra.Command, lm *logic.Manager, lines []string) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		res, err := lm.Execute(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res.Feedback)
		if res.Exit {
			return nil
		}
	}
	return nil
}
