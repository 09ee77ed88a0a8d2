/*
Copyright © 2020 Jacek Kucharczyk kucjac@gmail.com

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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi/log"
)

// rootCmd represents the base command when called without any sub commands
var rootCmd = &cobra.Command{
	Use:               "jsonapi-render",
	Short:             "Renders the resource graphs into JSON API documents.",
	Long:              `It renders the YAML resource graph fixtures into the JSON API compound documents.`,
	SilenceUsage:      true,
	PersistentPreRunE: setLogLevel,
}

func init() {
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "logging level. Possible values: debug3, debug2, debug, info, warning, error, critical")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setLogLevel(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil || level == "" {
		return err
	}
	if log.Logger() == nil {
		log.Default()
	}
	return log.SetLevel(log.ParseLevel(level))
}
