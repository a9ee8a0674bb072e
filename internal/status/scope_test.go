package status

import (
	"reflect"
	"testing"
)

func TestNewScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefixes []string
		want     Scope
	}{
		{"empty is root", nil, nil},
		{"single prefix", []string{"src"}, Scope{"src"}},
		{"trailing slash trimmed", []string{"src/"}, Scope{"src"}},
		{"backslashes normalized", []string{`src\sub`}, Scope{"src/sub"}},
		{"dot collapses to root", []string{"src", "."}, nil},
		{"cleaned", []string{"a/./b/../c"}, Scope{"a/c"}},
		{"leading slash trimmed", []string{"/src"}, Scope{"src"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewScope(tt.prefixes...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewScope(%v) = %v, want %v", tt.prefixes, got, tt.want)
			}
		})
	}
}

func TestScope_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		scope Scope
		path  string
		want  bool
	}{
		{"root contains everything", nil, "any/path", true},
		{"exact prefix", Scope{"src"}, "src", true},
		{"nested", Scope{"src"}, "src/main.go", true},
		{"deeply nested", Scope{"src"}, "src/a/b/c.go", true},
		{"sibling excluded", Scope{"src"}, "docs/readme.md", false},
		{"prefix is not a path prefix", Scope{"src"}, "srcfoo/a.go", false},
		{"second prefix matches", Scope{"src", "docs"}, "docs/x.md", true},
		{"ancestor of prefix excluded", Scope{"src/sub"}, "src", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.scope.Contains(tt.path); got != tt.want {
				t.Errorf("Scope(%v).Contains(%q) = %v, want %v", tt.scope, tt.path, got, tt.want)
			}
		})
	}
}

func TestScope_Covers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scope   Scope
		request Scope
		want    bool
	}{
		{"root covers root", nil, nil, true},
		{"root covers anything", nil, Scope{"a/b"}, true},
		{"narrow does not cover root", Scope{"src"}, nil, false},
		{"identical", Scope{"src"}, Scope{"src"}, true},
		{"nested request", Scope{"src"}, Scope{"src/sub"}, true},
		{"broader request", Scope{"src/sub"}, Scope{"src"}, false},
		{"partially covered", Scope{"src"}, Scope{"src", "docs"}, false},
		{"multiple covered", Scope{"src", "docs"}, Scope{"src/a", "docs"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.scope.Covers(tt.request); got != tt.want {
				t.Errorf("Scope(%v).Covers(%v) = %v, want %v", tt.scope, tt.request, got, tt.want)
			}
		})
	}
}
