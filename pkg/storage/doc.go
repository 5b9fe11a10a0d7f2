// Package storage reads translation files from S3-compatible object storage.
//
// S3Storage lists and fetches objects; TranslationSource turns every JSON or
// YAML object under a prefix into a single i18n.Store:
//
//	s3, err := storage.New(storage.Config{
//		Bucket:    "translations",
//		AccessKey: os.Getenv("S3_ACCESS_KEY"),
//		SecretKey: os.Getenv("S3_SECRET_KEY"),
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	catalog, err := i18n.New(
//		i18n.WithSource(ctx, storage.NewTranslationSource(s3, "locales/")),
//	)
//
// Errors from S3 are mapped to sentinels: ErrNotFound for missing keys and
// ErrAccessDenied for permission failures.
package storage
