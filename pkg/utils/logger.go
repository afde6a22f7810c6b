package utils

import (
	"io"

	"github.com/fatih/color"
)

const MaxNameLength = 20

// ColorLogger provides an io.Writer that prefixes every write with a
// colored name.
type ColorLogger struct {
	name   string
	writer io.Writer
	c      *color.Color
}

func NewColorLogger(name string, writer io.Writer, attr color.Attribute) io.Writer {
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength-3] + "..."
	}

	return &ColorLogger{
		name:   name,
		writer: writer,
		c:      color.New(attr),
	}
}

func (c *ColorLogger) Write(p []byte) (int, error) {
	if _, err := c.c.Fprint(c.writer, c.name, " | "); err != nil {
		return 0, err
	}
	if _, err := c.writer.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
