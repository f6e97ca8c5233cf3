package validation

// Limits holds the tunables shared by config parsing and batch splitting.
type Limits struct {
	MaxDepth    int
	Concurrency int
}

// ValidateLimits validates Limits. A Concurrency of zero means unbounded.
func ValidateLimits(l Limits) error {
	var v Validator
	v.Positive(l.MaxDepth, "max_depth")
	v.NonNegative(l.Concurrency, "concurrency")
	return v.Err()
}
