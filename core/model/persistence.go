package model

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// FormatVersion is the persisted model format version.
const FormatVersion = "1.0"

// Spec identifies a persisted model payload.
type Spec struct {
	Name          string `json:"name"`
	FormatVersion string `json:"format_version"`
}

// Envelope is the on-disk representation of fitted model parameters.
type Envelope struct {
	ModelSpec Spec            `json:"model_spec"`
	Params    json.RawMessage `json:"params"`
}

// SaveParams writes the fitted parameters of a model as a versioned JSON
// envelope.
func SaveParams(w io.Writer, name string, params interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return errors.Wrap(err, "failed to marshal model params")
	}

	env := Envelope{
		ModelSpec: Spec{
			Name:          name,
			FormatVersion: FormatVersion,
		},
		Params: raw,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&env); err != nil {
		return errors.Wrap(err, "failed to encode model envelope")
	}
	return nil
}

// LoadParams reads a JSON envelope written by SaveParams and unmarshals its
// parameter payload. The envelope's model name must match name.
func LoadParams(r io.Reader, name string, params interface{}) error {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return errors.Wrap(err, "failed to decode model envelope")
	}
	if env.ModelSpec.Name != name {
		return errors.Newf("model name mismatch: expected %q, got %q", name, env.ModelSpec.Name)
	}
	if err := json.Unmarshal(env.Params, params); err != nil {
		return errors.Wrap(err, "failed to unmarshal model params")
	}
	return nil
}
