package scalar

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Options controls a single validation call.
type Options struct {
	// AllowNull lets absent or nil values pass any declared kind. Default true.
	AllowNull bool `json:"allow_null" yaml:"allow_null" mapstructure:"allow_null"`
	// ReportOnly downgrades validation failures to warnings; Validate then
	// returns false instead of an error. Default false.
	ReportOnly bool `json:"report_only" yaml:"report_only" mapstructure:"report_only"`
	// SoftNumeric lets values that loosely equal their int/float coercion
	// satisfy the int and float kinds. Default false.
	SoftNumeric bool `json:"soft_numeric" yaml:"soft_numeric" mapstructure:"soft_numeric"`
	// Site labels the call site in diagnostics (see Here).
	Site string `json:"site,omitempty" yaml:"site,omitempty" mapstructure:"site"`
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{AllowNull: true}
}

// Overrides is a partially specified Options. Nil fields fall back to defaults.
type Overrides struct {
	AllowNull   *bool  `json:"allow_null,omitempty" yaml:"allow_null,omitempty" mapstructure:"allow_null"`
	ReportOnly  *bool  `json:"report_only,omitempty" yaml:"report_only,omitempty" mapstructure:"report_only"`
	SoftNumeric *bool  `json:"soft_numeric,omitempty" yaml:"soft_numeric,omitempty" mapstructure:"soft_numeric"`
	Site        string `json:"site,omitempty" yaml:"site,omitempty" mapstructure:"site"`
}

// Flag returns a pointer to b, for filling Overrides literals.
func Flag(b bool) *bool { return &b }

// MergeDefaults returns defaults with every field set in supplied applied on top.
// A nil supplied is the same as an empty one.
func MergeDefaults(supplied *Overrides, defaults Options) Options {
	out := defaults
	if supplied == nil {
		return out
	}
	if supplied.AllowNull != nil {
		out.AllowNull = *supplied.AllowNull
	}
	if supplied.ReportOnly != nil {
		out.ReportOnly = *supplied.ReportOnly
	}
	if supplied.SoftNumeric != nil {
		out.SoftNumeric = *supplied.SoftNumeric
	}
	if supplied.Site != "" {
		out.Site = supplied.Site
	}
	return out
}

// DecodeOverrides decodes a loosely typed options map, as found in documents
// and request bodies. Nil values are treated as absent; unknown keys are rejected.
func DecodeOverrides(raw map[string]any) (*Overrides, error) {
	var o Overrides
	if len(raw) == 0 {
		return &o, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &o,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return &o, nil
}

// Overrides returns o with every field set, so that merging it over any
// defaults yields o again.
func (o Options) Overrides() *Overrides {
	return &Overrides{
		AllowNull:   Flag(o.AllowNull),
		ReportOnly:  Flag(o.ReportOnly),
		SoftNumeric: Flag(o.SoftNumeric),
		Site:        o.Site,
	}
}
