package bashglob

import (
	"context"
	"runtime"

	"github.com/arthur-debert/bashglob/pkg/errors"
	"github.com/arthur-debert/bashglob/pkg/logging"
)

var defaultExecutor Executor = NewExecutor()

// Match reports whether subject matches the bash glob pattern. A nil
// opts uses the defaults. Shell-reported and spawn errors are returned
// only when opts.StrictErrors is set; otherwise they degrade to a
// non-match. Running on a platform without a POSIX compatible native
// shell is always an error.
func Match(subject, pattern string, opts *MatchOptions) (bool, error) {
	return MatchContext(context.Background(), subject, pattern, opts)
}

// MatchContext is Match with cancellation. A cancelled match reports a
// non-match under the lenient policy and a CANCELLED error under
// StrictErrors; it never hangs.
func MatchContext(ctx context.Context, subject, pattern string, opts *MatchOptions) (bool, error) {
	if err := checkPlatform(); err != nil {
		return false, err
	}
	normalized := Normalize(pattern, opts)
	return matchNormalized(ctx, defaultExecutor, subject, pattern, normalized)
}

// MatchAll filters list down to the elements matching pattern,
// preserving input order. The options are normalized once and shared
// across elements. Under StrictErrors the first failing element aborts
// the batch.
func MatchAll(list []string, pattern string, opts *MatchOptions) ([]string, error) {
	return MatchAllContext(context.Background(), list, pattern, opts)
}

// MatchAllContext is MatchAll with cancellation.
func MatchAllContext(ctx context.Context, list []string, pattern string, opts *MatchOptions) ([]string, error) {
	if err := checkPlatform(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("bashglob")
	logger.Debug().Str("pattern", pattern).Int("candidates", len(list)).Msg("Filtering list")

	normalized := Normalize(pattern, opts)

	matched := make([]string, 0, len(list))
	for _, subject := range list {
		ok, err := matchNormalized(ctx, defaultExecutor, subject, pattern, normalized)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, subject)
		}
	}
	return matched, nil
}

func matchNormalized(ctx context.Context, ex Executor, subject, pattern string, opts MatchOptions) (bool, error) {
	args := Compile(subject, pattern, opts)
	stdout, stderr, err := ex.Run(ctx, BashPath(), args, opts.Cwd)
	return resolve(ctx, interpret(stdout, stderr, err), err, opts)
}

// checkPlatform rejects hosts whose native command shell cannot run
// the compiled script. This is fatal and unconditional, never
// downgraded by the lenient error policy.
func checkPlatform() error {
	if runtime.GOOS == "windows" {
		return errors.New(errors.ErrPlatformUnsupported, "bashglob does not work on windows")
	}
	return nil
}
