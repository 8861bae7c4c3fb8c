package ianazone

import (
	"errors"

	"github.com/mohd-akram/luxon/tzoracle"
)

// fakeOracle wraps the real oracle and overrides selected capabilities so
// tests can exercise oracle behavior the rule data cannot produce.
type fakeOracle struct {
	tzoracle.TimeOracle

	offsetText map[string]string                   // canned offset text per zone
	fields     map[string]tzoracle.FieldsFormatter // canned fields formatters per zone
	noOffset   bool                                // offset formatter construction fails
	noParts    bool                                // structured parts unsupported

	offsetConstructions int
}

func (o *fakeOracle) OffsetFormatter(zone string) (tzoracle.OffsetFormatter, error) {
	o.offsetConstructions++
	if o.noOffset {
		return nil, errors.New("offset style unsupported")
	}
	if text, ok := o.offsetText[zone]; ok {
		return cannedText(text), nil
	}
	return o.TimeOracle.OffsetFormatter(zone)
}

func (o *fakeOracle) FieldsFormatter(zone string) (tzoracle.FieldsFormatter, error) {
	if f, ok := o.fields[zone]; ok {
		return f, nil
	}
	f, err := o.TimeOracle.FieldsFormatter(zone)
	if err != nil {
		return nil, err
	}
	if o.noParts {
		return textOnly{f}, nil
	}
	return f, nil
}

// cannedText is an offset formatter that returns a fixed string for any
// instant.
type cannedText string

func (f cannedText) Format(float64) (string, error) { return string(f), nil }

// textOnly hides the structured output of a fields formatter, forcing the
// positional fallback.
type textOnly struct{ tzoracle.FieldsFormatter }

func (f textOnly) Parts(float64) ([]tzoracle.Part, error) { return nil, tzoracle.ErrNoParts }

// cannedFields serves fixed parts and text regardless of instant.
type cannedFields struct {
	parts []tzoracle.Part
	text  string
}

func (f cannedFields) Parts(float64) ([]tzoracle.Part, error) {
	if f.parts == nil {
		return nil, tzoracle.ErrNoParts
	}
	return f.parts, nil
}

func (f cannedFields) Format(float64) (string, error) { return f.text, nil }

// namelessOracle delegates to the real oracle but does not implement
// tzoracle.NameFormatter.
type namelessOracle struct{}

func (namelessOracle) OffsetFormatter(zone string) (tzoracle.OffsetFormatter, error) {
	return tzoracle.TimeOracle{}.OffsetFormatter(zone)
}

func (namelessOracle) FieldsFormatter(zone string) (tzoracle.FieldsFormatter, error) {
	return tzoracle.TimeOracle{}.FieldsFormatter(zone)
}
