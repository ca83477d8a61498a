package block

// String returns the named configuration entry as a string.
func (c Config) String(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}

// Float returns the named configuration entry as a float64. Workflow files
// decode all numbers to float64, so this is the canonical numeric accessor.
func (c Config) Float(key string) (float64, bool) {
	switch v := c[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int returns the named configuration entry truncated to an int.
func (c Config) Int(key string) (int, bool) {
	f, ok := c.Float(key)
	return int(f), ok
}

// Bool returns the named configuration entry as a bool.
func (c Config) Bool(key string) (bool, bool) {
	v, ok := c[key].(bool)
	return v, ok
}
