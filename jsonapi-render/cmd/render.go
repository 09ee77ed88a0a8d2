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
	"context"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/encoding/jsonapi"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/graph"
	"github.com/neuronlabs/jsonapi/log"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [fixture]",
	Short: "Renders the fixture graph into the JSON API document",
	Long: `Renders the YAML fixture graph into the JSON API compound document.
The query defines the 'include' and 'fields[type]' parameters, i.e.:

	jsonapi-render render blog.yaml --query 'include=posts.comments&fields[posts]=title'`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("query", "q", "", "the request query with the include and fields parameters")
	renderCmd.Flags().StringP("config", "c", "", "the encoder config file path")
	renderCmd.Flags().String("config-name", "", "the encoder config name searched in the working directory and the 'configs' directory")
	renderCmd.Flags().Bool("minimal", false, "render only the attributes requested in the fields parameter")
	renderCmd.Flags().String("indent", "", "the indentation of the rendered document")
	renderCmd.Flags().StringP("output", "o", "", "the output file path, standard output by default")
}

type renderOptions struct {
	fixture    string
	query      string
	configPath string
	configName string
	minimal    bool
	indent     string
}

func runRender(cmd *cobra.Command, args []string) error {
	opts := renderOptions{fixture: args[0]}
	flags := cmd.Flags()

	var err error
	if opts.query, err = flags.GetString("query"); err != nil {
		return err
	}
	if opts.configPath, err = flags.GetString("config"); err != nil {
		return err
	}
	if opts.configName, err = flags.GetString("config-name"); err != nil {
		return err
	}
	if opts.minimal, err = flags.GetBool("minimal"); err != nil {
		return err
	}
	if opts.indent, err = flags.GetString("indent"); err != nil {
		return err
	}
	output, err := flags.GetString("output")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return errors.NewDetf(class.EncodingMarshalOutput, "creating output file: '%s' failed: %v", output, err)
		}
		defer file.Close()
		out = file
	}
	return render(out, opts)
}

func render(out io.Writer, opts renderOptions) error {
	cfg, err := readConfig(opts)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		if err = log.SetLevel(log.ParseLevel(cfg.LogLevel)); err != nil {
			return err
		}
	}

	values, err := url.ParseQuery(opts.query)
	if err != nil {
		return errors.NewDetf(class.QueryParametersInvalid, "invalid query: '%s'", opts.query).WithDetail(err.Error())
	}

	g, err := graph.Load(opts.fixture)
	if err != nil {
		return err
	}

	e, err := jsonapi.New(cfg, jsonapi.WithMinimalAttributes(opts.minimal))
	if err != nil {
		return err
	}
	doc, err := g.Assemble(e, jsonapi.NewRequest(context.Background(), values))
	if err != nil {
		return err
	}
	if opts.indent != "" {
		return e.MarshalIndent(out, doc, opts.indent)
	}
	return e.Marshal(out, doc)
}

func readConfig(opts renderOptions) (*config.Encoder, error) {
	switch {
	case opts.configPath != "":
		return config.ReadConfigFile(opts.configPath)
	case opts.configName != "":
		return config.ReadNamedConfig(opts.configName)
	default:
		return config.ReadDefaultConfig()
	}
}
