package i18n

// MessageFormatFunc renders a precompiled ICU message with the given variables.
type MessageFormatFunc func(vars M) (string, error)

// MessageFormat runs the function registered under key. A failing function
// yields its error message; an unknown key yields "Missing Key: <key>".
func (c *Catalog) MessageFormat(key string, vars M) string {
	fn, ok := c.messageFormats[key]
	if !ok {
		return "Missing Key: " + key
	}
	out, err := fn(vars)
	if err != nil {
		return err.Error()
	}
	return out
}

// HasMessageFormat reports whether a function is registered under key.
func (c *Catalog) HasMessageFormat(key string) bool {
	_, ok := c.messageFormats[key]
	return ok
}
