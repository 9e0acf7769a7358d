package bashglob

import "fmt"

// shellToggles maps each option to the shopt name bash receives via
// -O, in the fixed order Compile emits them. The toggles are
// commutative; the order exists for reproducibility. Nocaseglob maps
// to nocasematch because [[ ]] conditionals honor nocasematch, not
// nocaseglob (which only affects pathname expansion).
var shellToggles = []struct {
	enabled func(MatchOptions) bool
	name    string
}{
	{func(o MatchOptions) bool { return o.Dotglob }, "dotglob"},
	{func(o MatchOptions) bool { return o.Extglob }, "extglob"},
	{func(o MatchOptions) bool { return o.Failglob }, "failglob"},
	{func(o MatchOptions) bool { return o.Globstar }, "globstar"},
	{func(o MatchOptions) bool { return o.Nocaseglob }, "nocasematch"},
	{func(o MatchOptions) bool { return o.Nullglob }, "nullglob"},
}

// Compile builds the argument list for a single-shot bash invocation
// that matches subject against pattern: one `-O <toggle>` pair per
// enabled option, then `-c` with a script that echoes "true" on a
// match and nothing otherwise.
//
// Subject and pattern are interpolated into the script verbatim, with
// no escaping. See the package documentation for the trust boundary
// this implies.
func Compile(subject, pattern string, opts MatchOptions) []string {
	args := make([]string, 0, 2*len(shellToggles)+2)
	for _, t := range shellToggles {
		if t.enabled(opts) {
			args = append(args, "-O", t.name)
		}
	}
	script := fmt.Sprintf(`IFS=$"\n"; if [[ "%s" = %s ]]; then echo true; fi`, subject, pattern)
	return append(args, "-c", script)
}
