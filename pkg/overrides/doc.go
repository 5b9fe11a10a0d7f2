// Package overrides stores site-specific translation overrides in PostgreSQL
// and turns them into the extras store of an i18n.Catalog.
//
// Each row holds a locale, a dotted translation key without the "js" prefix
// and a sanitized value. Repository.Load nests the rows under their locale:
//
//	repo := overrides.NewRepository(pool)
//	extras, err := repo.Load(ctx)
//	if err != nil {
//		return err
//	}
//	catalog.SetExtras(extras)
//
// The table is created by the goose migrations returned from Migrations.
package overrides
