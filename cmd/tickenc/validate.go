package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// errInvalidDocument is returned once all violations have been printed.
var errInvalidDocument = errors.New("the document is not valid")

type validateOptions struct {
	SchemaFile string // JSON schema to validate against, defaults to the TickEncoded document
	Strict     bool   // also decode every string value in the document
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	o := &validateOptions{}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "validate a json or yaml document of encoded values",
		Long: `Validate a document from a file or stdin.

JSON and YAML formats are accepted. Without --schema the document must be a
single TickEncoded string.`,
		Example: `  # Validate a document against a generated schema
  tickenc validate ./artifact.yaml --schema ./artifact.schema.json

  # Check that every string in the document decodes
  cat values.json | tickenc validate --strict --schema ./values.schema.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, opts)
		},
	}

	validateCmd.Flags().StringVar(&o.SchemaFile, "schema", "", "path to a JSON schema file")
	validateCmd.Flags().BoolVar(&o.Strict, "strict", false, "require every string value to be valid encoded text")
	return validateCmd
}

func (o *validateOptions) run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	schemaData, err := o.loadSchema()
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	// Noop if you pass JSON through
	doc, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return fmt.Errorf("error converting yaml to json: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("error validating json: %w", err)
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	if o.Strict {
		var value interface{}
		if err := json.Unmarshal(doc, &value); err != nil {
			return fmt.Errorf("error parsing document: %w", err)
		}
		violations = append(violations, checkEncodedStrings(opts.codec, "(root)", value)...)
	}

	if len(violations) > 0 {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "The document is not valid. See errors:")
		for _, v := range violations {
			fmt.Fprintf(out, "- %s\n", v)
		}
		opts.log.Warn("Document failed validation", nil, map[string]interface{}{
			"violations": len(violations),
		})
		return errInvalidDocument
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "The document is valid")
	return err
}

func (o *validateOptions) loadSchema() ([]byte, error) {
	if o.SchemaFile == "" {
		return json.Marshal(tickencoding.Document())
	}

	data, err := os.ReadFile(o.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("error reading schema (%s): %w", o.SchemaFile, err)
	}
	// Schemas may be kept as YAML too.
	return yaml.YAMLToJSON(data)
}

// checkEncodedStrings decodes every string below value and reports the ones
// that are not valid encoded text, using gojsonschema's field notation.
func checkEncodedStrings(codec tickencoding.Codec, path string, value interface{}) []string {
	switch v := value.(type) {
	case string:
		if _, err := codec.DecodeBytes([]byte(v)); err != nil {
			return []string{fmt.Sprintf("%s: %s", path, err)}
		}
	case []interface{}:
		var out []string
		for i, item := range v {
			out = append(out, checkEncodedStrings(codec, path+"."+strconv.Itoa(i), item)...)
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var out []string
		for _, k := range keys {
			out = append(out, checkEncodedStrings(codec, path+"."+k, v[k])...)
		}
		return out
	}
	return nil
}
