package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// DefaultMaxObjectSize caps a single translation file.
const DefaultMaxObjectSize = 10 << 20

// SourceOption configures a TranslationSource.
type SourceOption func(*TranslationSource)

// WithMaxObjectSize overrides DefaultMaxObjectSize.
func WithMaxObjectSize(n int64) SourceOption {
	return func(s *TranslationSource) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// TranslationSource loads translation fragments stored as JSON or YAML
// objects under a key prefix. It satisfies i18n.Source.
type TranslationSource struct {
	reader  Reader
	prefix  string
	maxSize int64
}

// NewTranslationSource creates a source reading every *.json, *.yaml and *.yml
// object under prefix.
func NewTranslationSource(reader Reader, prefix string, opts ...SourceOption) *TranslationSource {
	s := &TranslationSource{reader: reader, prefix: prefix, maxSize: DefaultMaxObjectSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load lists the prefix, decodes each fragment and deep-merges them in key order.
func (s *TranslationSource) Load(ctx context.Context) (i18n.Store, error) {
	objects, err := s.reader.List(ctx, s.prefix)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(objects, func(a, b Object) int { return strings.Compare(a.Key, b.Key) })

	store := i18n.Store{}
	for _, obj := range objects {
		decode := decoderFor(obj.Key)
		if decode == nil {
			continue
		}
		if obj.Size > s.maxSize {
			return nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, obj.Key)
		}

		data, err := s.read(ctx, obj.Key)
		if err != nil {
			return nil, err
		}
		fragment, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailed, obj.Key, err)
		}
		store.Merge(fragment)
	}
	return store, nil
}

func (s *TranslationSource) read(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.reader.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, s.maxSize+1))
	if err != nil {
		return nil, wrapS3Error(err, ErrGetFailed)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, key)
	}
	return data, nil
}

func decoderFor(key string) func([]byte) (i18n.Store, error) {
	switch strings.ToLower(path.Ext(key)) {
	case ".json":
		return i18n.DecodeJSON
	case ".yaml", ".yml":
		return i18n.DecodeYAML
	default:
		return nil
	}
}

var _ i18n.Source = (*TranslationSource)(nil)
