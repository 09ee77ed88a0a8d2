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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

const fixture = "../../graph/testdata/blog.yaml"

func TestRender(t *testing.T) {
	t.Run("Included", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := render(buf, renderOptions{fixture: fixture, query: "include=posts.comments&fields[comments]=body"})
		require.NoError(t, err)

		var doc struct {
			Data     []map[string]interface{} `json:"data"`
			Included []struct {
				ID         string                 `json:"id"`
				Type       string                 `json:"type"`
				Attributes map[string]interface{} `json:"attributes"`
			} `json:"included"`
			JSONAPI map[string]interface{} `json:"jsonapi"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Len(t, doc.Data, 1)
		require.Len(t, doc.Included, 4)
		assert.Equal(t, "posts", doc.Included[0].Type)
		assert.Equal(t, "comments", doc.Included[1].Type)
		assert.Equal(t, map[string]interface{}{"body": "nice"}, doc.Included[1].Attributes)
		assert.Equal(t, "1.0", doc.JSONAPI["version"])
	})

	t.Run("Minimal", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := render(buf, renderOptions{fixture: fixture, minimal: true, indent: "  "})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "\"attributes\": {}")
	})

	t.Run("Config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "encoder.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: \"1.1\"\nimplementation_meta:\n  server: render\n"), 0o600))

		buf := &bytes.Buffer{}
		err := render(buf, renderOptions{fixture: fixture, configPath: path})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"jsonapi":{"version":"1.1","meta":{"server":"render"}}`)
	})

	t.Run("Errors", func(t *testing.T) {
		err := render(&bytes.Buffer{}, renderOptions{fixture: "missing.yaml"})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphFixtureInvalid))

		err = render(&bytes.Buffer{}, renderOptions{fixture: fixture, query: "include=%zz"})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.QueryParametersInvalid))

		err = render(&bytes.Buffer{}, renderOptions{fixture: fixture, query: "include=unknown"})
		require.NoError(t, err)
	})
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "document.json")
	rootCmd.SetArgs([]string{"render", fixture, "--query", "include=posts", "--output", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"included":[{"id":"1","type":"posts"`)
}
