// Package cliutil holds helpers shared by the leetplot commands.
package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wandb/leetplot/internal/observability/errs"
)

// Output formats accepted by the --format flag.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// AddOutputFlags registers the --format and --template flags.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("template", "",
		"Template for output format. Accepts Go template format (e.g. --template='{{.domain.xMax}}')")
	cmd.Flags().String("format", FormatJSON, "Output format. Accepts 'json' or 'yaml'")
}

// HandleOutput writes v to the command's output according to the
// --template or --format flag.
//
// Templates see v as it appears in JSON, so field names are the JSON keys.
func HandleOutput(cmd *cobra.Command, v any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return errs.Wrapf(err, "failed to parse template")
		}

		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		if err := tmpl.Execute(out, generic); err != nil {
			return errs.Wrapf(err, "failed to execute template")
		}
		fmt.Fprintln(out)
		return nil
	}

	var (
		output []byte
		err    error
	)
	switch formatFlag {
	case FormatYAML:
		output, err = yaml.Marshal(v)
		if err != nil {
			return errs.Wrapf(err, "failed to marshal to YAML")
		}
		fmt.Fprint(out, string(output))
	case FormatJSON, "":
		output, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errs.Wrapf(err, "failed to marshal to JSON")
		}
		fmt.Fprintln(out, string(output))
	default:
		return errs.Newf("unknown output format %q", formatFlag)
	}
	return nil
}

func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to marshal to JSON")
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errs.Wrapf(err, "failed to decode JSON")
	}
	return generic, nil
}
