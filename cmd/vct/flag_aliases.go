package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// draftFlagAliases maps alternative spellings onto the canonical create and
// update flag names, so --chassis-number and --date resolve to the single
// underlying flag.
var draftFlagAliases = map[string]string{
	"chassis-number": "chassis",
	"date":           "completion",
}

func addDraftFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), draftFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
