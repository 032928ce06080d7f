// Package flagx lets several independent parsers share one command line.
//
// Each config stage keeps only the flags it owns and parses that subset with
// its own flag.FlagSet, so unknown flags of other stages never cause errors.
package flagx

import (
	"flag"
	"strings"
)

// ConfigFileFlags are the flag names that select a JSON config file.
var ConfigFileFlags = []string{"-c", "-config"}

// flagName strips an optional "=value" suffix and normalizes "--name" to
// "-name", which is how the flag package treats both forms.
func flagName(arg string) string {
	name, _, _ := strings.Cut(arg, "=")
	if strings.HasPrefix(name, "--") {
		name = name[1:]
	}
	return name
}

// FilterArgs keeps only the arguments that belong to allowedFlags.
//
// Both "-name value" and "-name=value" forms are understood; a value is
// taken from the next argument only if it does not itself start with "-".
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, ok := allowed[flagName(arg)]; !ok {
			continue
		}
		out = append(out, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigFile returns the value of -c / -config found in args, or "".
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFileFlags))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
