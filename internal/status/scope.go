package status

import (
	"path"
	"strings"
)

// Scope is a set of repository-relative path prefixes a scan covers.
// An empty Scope means the whole repository.
type Scope []string

// NewScope builds a Scope from raw prefixes. Prefixes are slash-normalized
// and cleaned; a prefix that resolves to the repository root makes the whole
// scope the root scope.
func NewScope(prefixes ...string) Scope {
	var s Scope
	for _, p := range prefixes {
		p = strings.TrimSuffix(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")
		if p == "" || p == "." || p == "/" {
			return nil
		}
		s = append(s, strings.TrimPrefix(p, "/"))
	}
	return s
}

// IsRoot reports whether the scope covers the whole repository.
func (s Scope) IsRoot() bool {
	return len(s) == 0
}

// Contains reports whether p lies under one of the scope's prefixes.
func (s Scope) Contains(p string) bool {
	if s.IsRoot() {
		return true
	}
	for _, prefix := range s {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// Covers reports whether every prefix of other is equal to or nested under
// some prefix of s. A record scoped to s can answer queries scoped to other
// only if this holds.
func (s Scope) Covers(other Scope) bool {
	if s.IsRoot() {
		return true
	}
	if other.IsRoot() {
		return false
	}
	for _, prefix := range other {
		if !s.Contains(prefix) {
			return false
		}
	}
	return true
}
