// Package encoder renders documents as block style YAML.
package encoder

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Options struct {
	// Indent is the number of spaces per nesting level.
	Indent int `validate:"min=2,max=9"`
	// IndentSequences places list items one level deeper than the key
	// that owns them. When false, items start at the key's column.
	IndentSequences bool
}

func DefaultOptions() Options {
	return Options{Indent: 2, IndentSequences: true}
}

// Encode writes v to w as a single YAML document.
func Encode(w io.Writer, v any, opts Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("encoder: invalid options: %w", err)
	}

	enc := yaml.NewEncoder(w,
		yaml.Indent(opts.Indent),
		yaml.IndentSequence(opts.IndentSequences),
	)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
