package cli

import "github.com/spf13/pflag"

// override copies value into dst only when the flag was set explicitly, so
// environment configuration survives flag defaults.
func override[T any](fs *pflag.FlagSet, name string, dst *T, value T) {
	if fs.Changed(name) {
		*dst = value
	}
}
