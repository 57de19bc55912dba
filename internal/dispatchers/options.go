package dispatchers

import (
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"github.com/footprint-tools/cmdext/internal/coerce"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
	"github.com/footprint-tools/cmdext/internal/tokenizer"
)

const (
	DefaultSeparator = "."
	DefaultMaxDepth  = 16
)

// Options configures an Engine. Every field is optional and invalid values
// fall back to their defaults instead of failing construction.
type Options struct {
	// Separator splits command paths. Must be non-empty without whitespace.
	Separator string

	// Converter transforms each argument before the handler runs.
	Converter Converter

	// ConvertNumbers selects NumberOrString when Converter is nil.
	ConvertNumbers bool

	// Quotes lists the quote markers for argument tokenizing.
	Quotes []string

	// Commands is the initial tree. It is copied.
	Commands *Commands

	CaseInsensitive bool

	// MaxDepth bounds nested Context.Dispatch calls.
	MaxDepth int

	Logger domain.Logger
}

func (o Options) withDefaults() Options {
	if o.Separator == "" || strings.IndexFunc(o.Separator, unicode.IsSpace) >= 0 {
		o.Separator = DefaultSeparator
	}
	if o.Converter == nil && o.ConvertNumbers {
		o.Converter = NumberOrString
	}
	o.Quotes = tokenizer.NormalizeQuotes(o.Quotes...)
	if o.Commands == nil {
		o.Commands = NewCommands()
	} else {
		o.Commands = CloneCommands(o.Commands)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = log.NopLogger{}
	}
	return o
}

var optionDefaults = map[string]any{
	"separator":        DefaultSeparator,
	"converter":        false,
	"quotes":           []any{},
	"case_insensitive": false,
	"max_depth":        DefaultMaxDepth,
}

var optionAllowed = map[string][]coerce.Tag{
	"converter": {coerce.Func},
	"quotes":    {coerce.String},
}

// OptionsFromMap reads options from a loosely typed map such as a decoded
// manifest section. Unknown keys are ignored and mistyped values fall back
// to defaults.
func OptionsFromMap(m map[string]any) Options {
	shaped := coerce.Shape(m, optionDefaults, optionAllowed)

	var opts Options
	opts.Separator, _ = shaped["separator"].(string)
	opts.CaseInsensitive, _ = shaped["case_insensitive"].(bool)
	opts.MaxDepth = cast.ToInt(shaped["max_depth"])

	switch c := shaped["converter"].(type) {
	case bool:
		opts.ConvertNumbers = c
	case Converter:
		opts.Converter = c
	case func(string) any:
		opts.Converter = c
	}

	switch q := shaped["quotes"].(type) {
	case string:
		opts.Quotes = []string{q}
	default:
		opts.Quotes = coerce.Strings(q)
	}

	return opts
}
