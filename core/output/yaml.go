package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders a report as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format() Format { return FormatYAML }

func (f *YAMLFormatter) Render(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(report)); err != nil {
		return err
	}
	return enc.Close()
}
