// Package bashglob matches strings against shell glob and extglob
// patterns by delegating the match to an installed bash, giving
// bit-for-bit parity with the shell's own pattern matching instead of
// a reimplemented glob engine.
//
// Each match compiles a one-shot bash invocation of the form
//
//	bash -O <toggle>... -c 'IFS=$"\n"; if [[ "<subject>" = <pattern> ]]; then echo true; fi'
//
// and reads the result back from the process's output streams: "true"
// on stdout means matched, empty stdout means no match, and anything
// on stderr is a shell-reported error.
//
// Subject and pattern are interpolated into the script verbatim, with
// no quoting or escaping. This is a deliberate trust boundary: the
// pattern must be interpreted as shell syntax for matching to work at
// all, so callers passing untrusted input assume the risk of shell
// injection and must sanitize upstream.
package bashglob
