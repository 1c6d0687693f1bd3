package access

// Checker reports whether the given identity may run management operations.
type Checker func(id int64) bool

// NewChecker builds a Checker from a static allow-list of admin identities.
func NewChecker(ids []int64) Checker {
	allowed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}

	return func(id int64) bool {
		_, ok := allowed[id]
		return ok
	}
}
