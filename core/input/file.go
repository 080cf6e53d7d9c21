// Package input collects pricing inputs from files and from an operator.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"proposal-pricing/core/pricing"
	apperrors "proposal-pricing/internal/errors"
	"proposal-pricing/internal/logging"
)

// Document is a proposal input file: the seven pricing inputs plus labels.
type Document struct {
	// Project titles the proposal
	Project string

	// Currency labels amounts; no conversion is performed
	Currency string

	Inputs pricing.Inputs
}

// fileDocument mirrors Document with the attribute names used on disk.
type fileDocument struct {
	Project     string  `hcl:"project,optional" yaml:"project" json:"project"`
	Currency    string  `hcl:"currency,optional" yaml:"currency" json:"currency"`
	RatePerDay  float64 `hcl:"rate_per_day,optional" yaml:"rate_per_day" json:"rate_per_day"`
	BaseDays    float64 `hcl:"base_days,optional" yaml:"base_days" json:"base_days"`
	Complexity  float64 `hcl:"complexity,optional" yaml:"complexity" json:"complexity"`
	Urgency     float64 `hcl:"urgency,optional" yaml:"urgency" json:"urgency"`
	ClientValue float64 `hcl:"client_value,optional" yaml:"client_value" json:"client_value"`
	Confidence  float64 `hcl:"confidence,optional" yaml:"confidence" json:"confidence"`
	PlatformFee float64 `hcl:"platform_fee,optional" yaml:"platform_fee" json:"platform_fee"`
}

func newFileDocument(defaults pricing.Inputs) fileDocument {
	return fileDocument{
		RatePerDay:  defaults.RatePerDay,
		BaseDays:    defaults.BaseDays,
		Complexity:  defaults.Complexity,
		Urgency:     defaults.Urgency,
		ClientValue: defaults.ClientValue,
		Confidence:  defaults.Confidence,
		PlatformFee: defaults.PlatformFee,
	}
}

func (d fileDocument) document() Document {
	return Document{
		Project:  d.Project,
		Currency: d.Currency,
		Inputs: pricing.Inputs{
			RatePerDay:  d.RatePerDay,
			BaseDays:    d.BaseDays,
			Complexity:  d.Complexity,
			Urgency:     d.Urgency,
			ClientValue: d.ClientValue,
			Confidence:  d.Confidence,
			PlatformFee: d.PlatformFee,
		},
	}
}

// LoadFile reads a proposal input file. Attributes absent from the file keep
// their value from defaults. The format follows the extension: .hcl, .yaml,
// .yml or .json. The inputs are not validated here.
func LoadFile(path string, defaults pricing.Inputs) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, apperrors.Wrap(apperrors.TypeInput, "failed to read input file", err).
			WithContext("path", path)
	}
	return Parse(path, data, defaults)
}

// Parse decodes input file content; filename selects the format. Unknown
// attributes are rejected in every format.
func Parse(filename string, data []byte, defaults pricing.Inputs) (Document, error) {
	doc := newFileDocument(defaults)
	ext := strings.ToLower(filepath.Ext(filename))

	var err error
	switch ext {
	case ".hcl":
		err = hclsimple.Decode(filename, data, nil, &doc)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); errors.Is(err, io.EOF) {
			err = nil
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return Document{}, apperrors.Newf(apperrors.TypeInput, "unsupported input file type %q (use .hcl, .yaml or .json)", ext).
			WithContext("path", filename)
	}
	if err != nil {
		return Document{}, apperrors.Parsing("failed to parse "+filepath.Base(filename), err).
			WithContext("path", filename)
	}

	logging.Debug("Loaded input file",
		zap.String("path", filename),
		zap.String("format", strings.TrimPrefix(ext, ".")),
		zap.String("project", doc.Project))

	return doc.document(), nil
}
