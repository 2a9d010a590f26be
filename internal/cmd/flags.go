package cmd

import "github.com/spf13/pflag"

// flagAlias registers a hidden alias for an existing string flag, sharing
// its value so either spelling works.
func flagAlias(fs *pflag.FlagSet, name, alias string) {
	f := fs.Lookup(name)
	if f == nil || fs.Lookup(alias) != nil {
		return
	}
	fs.Var(f.Value, alias, "Alias for --"+name)
	_ = fs.MarkHidden(alias)
}
