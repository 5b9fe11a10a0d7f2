package i18n_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestVerbose(t *testing.T) {
	t.Parallel()

	t.Run("numbers scopes in order of first use", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		v := i18n.NewVerbose(newCatalog(t), slog.New(slog.NewTextHandler(&buf, nil)))

		require.Equal(t, "Hello, Ana! (#1)", v.T("hello", i18n.Vars(i18n.M{"name": "Ana"})))
		require.Equal(t, "English only (#2)", v.Translate("only_en"))
		require.Equal(t, "Hello, Bob! (#1)", v.T("hello", i18n.Vars(i18n.M{"name": "Bob"})))
		require.Equal(t, "[en.missing] (#3)", v.T("missing"))

		require.Equal(t, 3, v.Seen())
		require.Equal(t, 3, strings.Count(buf.String(), "translation key seen"))
		require.Contains(t, buf.String(), "scope=hello")
	})

	t.Run("nil logger is allowed", func(t *testing.T) {
		t.Parallel()
		v := i18n.NewVerbose(newCatalog(t), nil)
		require.Equal(t, "English only (#1)", v.T("only_en"))
	})

	t.Run("concurrent use assigns unique numbers", func(t *testing.T) {
		t.Parallel()
		v := i18n.NewVerbose(newCatalog(t), nil)

		scopes := []string{"a", "b", "c", "d", "e"}
		var wg sync.WaitGroup
		for range 10 {
			for _, scope := range scopes {
				wg.Add(1)
				go func() {
					defer wg.Done()
					v.T(scope)
				}()
			}
		}
		wg.Wait()

		require.Equal(t, len(scopes), v.Seen())
		seqs := make(map[string]bool)
		for _, scope := range scopes {
			out := v.T(scope)
			seqs[out[strings.LastIndex(out, "(#"):]] = true
		}
		require.Len(t, seqs, len(scopes))
	})
}
