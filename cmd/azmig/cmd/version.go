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

package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mayoit/azmig-tool-assistant/version"
)

func versionCmd() *cobra.Command {
	var output string
	newCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of azmig",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch output {
			case "":
				cmd.Println(info.String())
			case "json":
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			default:
				return errors.Errorf("invalid output format %q", output)
			}
			return nil
		},
	}
	newCmd.Flags().StringVarP(&output, "output", "o", "", "Output format: '' or 'json'.")
	return newCmd
}
