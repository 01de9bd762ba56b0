// Package schema implements the closed field schema every node reader
// validates against before constructing pipeline objects. A Matcher is a
// plain value holding the declared field sets; Matches is a pure predicate
// over the field names actually present on a node. Unknown fields always
// fail: a typo in a document is a hard error, not a silently ignored key.
package schema

// Matcher holds the declared field contract for one node kind.
type Matcher struct {
	required map[string]struct{}
	allowed  map[string]struct{}
}

// NewMatcher returns an empty field contract.
func NewMatcher() *Matcher {
	return &Matcher{
		required: make(map[string]struct{}),
		allowed:  make(map[string]struct{}),
	}
}

// RequireExactlyOnce registers a mandatory field. Registering the same
// field twice reports false so a broken schema declaration cannot pass
// validation by accident; the document model itself already guarantees
// unique field names per node.
func (m *Matcher) RequireExactlyOnce(name string) bool {
	if _, ok := m.required[name]; ok {
		return false
	}
	m.required[name] = struct{}{}
	return true
}

// Allow registers an optional field.
func (m *Matcher) Allow(name string) {
	m.allowed[name] = struct{}{}
}

// Matches reports whether the given field names satisfy the contract:
// every required field present, every present field either required or
// allowed. The input is the sorted field-name set of a node; sorting is
// not needed for correctness, it is the canonical form readers pass in.
func (m *Matcher) Matches(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return false
		}
		seen[name] = struct{}{}

		_, isRequired := m.required[name]
		_, isAllowed := m.allowed[name]
		if !isRequired && !isAllowed {
			return false
		}
	}
	for name := range m.required {
		if _, ok := seen[name]; !ok {
			return false
		}
	}
	return true
}
