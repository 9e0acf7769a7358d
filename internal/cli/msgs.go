package cli

const (
	MsgRootShort = "Match strings against bash glob patterns"
	MsgRootLong  = `bashglob matches strings against shell glob and extglob patterns by
delegating the match to an installed bash, so results are identical to
what the shell itself would do.

Patterns are handed to bash verbatim: extended glob operators, ** and
case-insensitive matching all behave exactly as they do in bash.`

	MsgMatchShort = "Match one or more strings against a pattern"
	MsgMatchLong  = `Match each string against the pattern and report the result.

Exits with status 1 when nothing matched, so the command composes with
shell conditionals the way grep does.`
	MsgMatchExample = `  bashglob match 'f*' foo
  bashglob match --nocase 'foo' FOO
  bashglob match '@(foo|bar)' foo baz`

	MsgFilterShort = "Filter strings down to the ones matching a pattern"
	MsgFilterLong  = `Print the strings that match the pattern, one per line, preserving
input order. Strings are taken from the arguments, or from standard
input (one per line) when no string arguments are given.`
	MsgFilterExample = `  bashglob filter 'b*' foo bar baz
  ls | bashglob filter '*.go'`
)
