package sanitizer

// sanitizeWhole applies c to a whole number.
//
// MinValue and MaxValue share the same rule: values above the reference are
// clamped down to it, values below it are kept.
func sanitizeWhole(v int64, c Constraint) (int64, error) {
	switch c.Kind() {
	case MinValue, MaxValue:
		n, err := c.Ref()
		if err != nil {
			return v, err
		}
		return ClampMax(v, int64(n)), nil
	case NotNegative:
		n, err := c.Ref()
		if err != nil {
			return v, err
		}
		return ReplaceNegative(v, int64(n)), nil
	default:
		return v, nil
	}
}
