package bashglob

import (
	"context"
	"strings"

	"github.com/arthur-debert/bashglob/pkg/errors"
)

// outcomeKind distinguishes the three meaningful shell results plus
// the case where no shell ran at all.
type outcomeKind int

const (
	outcomeNotMatched outcomeKind = iota
	outcomeMatched
	outcomeEvalError
	outcomeSpawnError
)

type outcome struct {
	kind    outcomeKind
	message string
}

// interpret classifies captured shell output. Anything on stderr is a
// shell-reported error regardless of stdout or exit status; a run
// error with a clean stderr means the spawn itself failed; otherwise
// non-empty stdout is a match.
func interpret(stdout, stderr []byte, runErr error) outcome {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return outcome{kind: outcomeEvalError, message: msg}
	}
	if runErr != nil {
		return outcome{kind: outcomeSpawnError, message: runErr.Error()}
	}
	if strings.TrimSpace(string(stdout)) != "" {
		return outcome{kind: outcomeMatched}
	}
	return outcome{kind: outcomeNotMatched}
}

// resolve collapses an outcome to the public boolean contract.
// Evaluation and spawn errors surface only under StrictErrors;
// otherwise they degrade to a non-match.
func resolve(ctx context.Context, o outcome, runErr error, opts MatchOptions) (bool, error) {
	switch o.kind {
	case outcomeMatched:
		return true, nil
	case outcomeEvalError:
		if opts.StrictErrors {
			return false, errors.New(errors.ErrEvaluation, o.message)
		}
		return false, nil
	case outcomeSpawnError:
		if opts.StrictErrors {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return false, errors.Wrap(ctxErr, errors.ErrCancelled, "match cancelled")
			}
			return false, errors.Wrap(runErr, errors.ErrSpawn, "failed to spawn bash")
		}
		return false, nil
	}
	return false, nil
}
