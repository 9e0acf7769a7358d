package bashglob

import (
	"os"
	"regexp"
	"strings"
)

// extglobRe matches the operator prefixes that qualify a pattern as an
// extended glob: one of ? * + @ ! immediately followed by "(".
var extglobRe = regexp.MustCompile(`[?*+@!]\(`)

// MatchOptions controls how a pattern is matched. The zero value is a
// valid set of options: case-sensitive matching in the process working
// directory with lenient error handling.
type MatchOptions struct {
	// Shell toggles, handed to bash via `-O <name>`.
	Dotglob    bool
	Extglob    bool
	Failglob   bool
	Globstar   bool
	Nocaseglob bool
	Nullglob   bool

	// Aliases for the toggles above. Normalize expands them; a
	// canonical record never carries them.
	Dot    bool // implies Dotglob
	Nocase bool // implies Nocaseglob
	Nonull bool // implies Nullglob

	// StrictErrors raises shell-reported and spawn errors instead of
	// collapsing them to a non-match.
	StrictErrors bool

	// Cwd is the working directory the bash process runs in. Empty
	// means the process working directory.
	Cwd string

	// Normalized marks a canonical record. Normalize returns such a
	// record unchanged, so wrapper layers can pre-normalize once.
	Normalized bool
}

// Normalize resolves a raw options record into its canonical form for
// the given pattern: aliases are expanded (they only ever add true,
// never overwrite an explicit toggle), toggles implied by the
// pattern's syntax are switched on, and Cwd gets a default. The result
// is marked Normalized; normalizing it again is a no-op. A nil opts is
// treated as the zero value. Normalize never fails, even for an empty
// pattern.
func Normalize(pattern string, opts *MatchOptions) MatchOptions {
	if opts != nil && opts.Normalized {
		return *opts
	}

	var res MatchOptions
	if opts != nil {
		res = *opts
	}

	if res.Cwd == "" {
		if cwd, err := os.Getwd(); err == nil {
			res.Cwd = cwd
		}
	}

	if res.Dot {
		res.Dotglob = true
	}
	if res.Nocase {
		res.Nocaseglob = true
	}
	if res.Nonull {
		res.Nullglob = true
	}
	res.Dot, res.Nocase, res.Nonull = false, false, false

	if !res.Globstar && strings.Contains(pattern, "**") {
		res.Globstar = true
	}
	if !res.Extglob && extglobRe.MatchString(pattern) {
		res.Extglob = true
	}

	res.Normalized = true
	return res
}
