package i18n

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/dmitrymomot/lexicon/pkg/logger"
)

// Verbose decorates a Translator for translators auditing UI strings.
// Each distinct scope gets a sequence number the first time it is seen and
// is logged once; every result is suffixed with " (#<seq>)".
type Verbose struct {
	next   Translator
	logger *slog.Logger

	mu   sync.Mutex
	seq  int
	seen map[string]int
}

// NewVerbose wraps next. A nil logger discards the log output.
func NewVerbose(next Translator, log *slog.Logger) *Verbose {
	if log == nil {
		log = logger.NewNope()
	}
	return &Verbose{
		next:   next,
		logger: log,
		seen:   make(map[string]int),
	}
}

// Translate implements Translator.
func (v *Verbose) Translate(scope string, opts ...Options) string {
	result := v.next.Translate(scope, opts...)

	v.mu.Lock()
	seq, ok := v.seen[scope]
	if !ok {
		v.seq++
		seq = v.seq
		v.seen[scope] = seq
	}
	v.mu.Unlock()

	if !ok {
		v.logger.Info("translation key seen",
			slog.Int("seq", seq),
			slog.String("scope", scope),
			slog.Any("vars", mergeOptions(opts).Vars),
		)
	}

	return result + " (#" + strconv.Itoa(seq) + ")"
}

// T is a shorthand for Translate.
func (v *Verbose) T(scope string, opts ...Options) string {
	return v.Translate(scope, opts...)
}

// Seen returns the number of distinct scopes translated so far.
func (v *Verbose) Seen() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.seen)
}
