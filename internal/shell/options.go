package shell

import (
	"io"
	"os"

	"bmset"
)

type Options struct {
	DefaultSize int
	Out         io.Writer
	Timing      bool
}

var DefaultOptions = Options{
	DefaultSize: bmset.DefaultSize,
	Out:         os.Stdout,
	Timing:      false,
}

type Option func(*Options)

func WithDefaultSize(n int) Option {
	return func(o *Options) {
		o.DefaultSize = n
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Out = w
	}
}

func WithTiming(enabled bool) Option {
	return func(o *Options) {
		o.Timing = enabled
	}
}
