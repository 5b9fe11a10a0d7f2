package i18n

// M is a shorthand for interpolation variables.
type M = map[string]any

// Options describes a single translation request.
// Several Options values passed to one call are merged left to right:
// the first non-zero value of each field wins, and Vars merge key by key
// with the same precedence.
type Options struct {
	// Locale overrides the catalog's current locale.
	Locale string
	// Scope is prepended to the requested key.
	Scope string
	// Count triggers pluralization when set.
	Count *int
	// DefaultValue is returned by Lookup when the key is missing everywhere.
	DefaultValue any
	// Vars are interpolation variables.
	Vars M
}

// Count returns a pointer to n, for use as Options.Count.
func Count(n int) *int {
	return &n
}

// Vars wraps interpolation variables into Options.
func Vars(vars M) Options {
	return Options{Vars: vars}
}

func mergeOptions(opts []Options) Options {
	var out Options
	for _, o := range opts {
		if out.Locale == "" {
			out.Locale = o.Locale
		}
		if out.Scope == "" {
			out.Scope = o.Scope
		}
		if out.Count == nil {
			out.Count = o.Count
		}
		if out.DefaultValue == nil {
			out.DefaultValue = o.DefaultValue
		}
		for key, value := range o.Vars {
			if out.Vars == nil {
				out.Vars = make(M, len(o.Vars))
			}
			if _, exists := out.Vars[key]; !exists {
				out.Vars[key] = value
			}
		}
	}
	return out
}

// interpolationVars returns the variables used to render a template.
// Count is exposed as "count" and takes precedence over Vars.
func (o Options) interpolationVars() M {
	vars := make(M, len(o.Vars)+1)
	for key, value := range o.Vars {
		vars[key] = value
	}
	if o.Count != nil {
		vars["count"] = *o.Count
	}
	return vars
}
