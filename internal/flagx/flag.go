// Package flagx lets several config sources share os.Args: each source
// picks out the flags it owns and parses only those.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags listed in allowedFlags, together with
// their values. Both "-f value" and "-f=value" forms are recognised; a
// following argument starting with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// stringFlag returns the value of a string flag that may be spelled by any
// of names (e.g. "c" and "config"). The last occurrence wins.
func stringFlag(names ...string) string {
	allowed := make([]string, 0, len(names))
	for _, n := range names {
		allowed = append(allowed, "-"+n, "--"+n)
	}
	args := FilterArgs(os.Args[1:], allowed)

	var value string
	fs := flag.NewFlagSet(names[0], flag.ContinueOnError)
	fs.SetOutput(discard{})
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(args)

	return value
}

// JsonConfigFlags returns the JSON config path given by -c or -config, or
// "" when neither is present.
func JsonConfigFlags() string {
	return stringFlag("c", "config")
}

// EnvFileFlag returns the dotenv path given by -env, or "" when absent.
func EnvFileFlag() string {
	return stringFlag("env")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
