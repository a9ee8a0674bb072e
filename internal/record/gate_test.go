package record

import (
	"testing"

	"github.com/raphi011/gst/internal/status"
)

func completeRecord() *Record {
	return Capture(status.Query{
		Untracked: status.UntrackedComplete,
		Ignored:   status.IgnoredMatching,
		Branch:    true,
	}, nil, &status.BranchInfo{Head: "main"})
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rec   func() *Record
		query status.Query
		want  Decision
	}{
		{
			name:  "nil record rescans",
			rec:   func() *Record { return nil },
			query: status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredMatching},
			want:  Rescan,
		},
		{
			name:  "complete record derives normal",
			rec:   completeRecord,
			query: status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredMatching},
			want:  Derive,
		},
		{
			name:  "complete record derives all",
			rec:   completeRecord,
			query: status.Query{Untracked: status.UntrackedAll, Ignored: status.IgnoredMatching},
			want:  Derive,
		},
		{
			name:  "ignored mode mismatch rescans",
			rec:   completeRecord,
			query: status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredDisabled},
			want:  Rescan,
		},
		{
			name: "underivable untracked mode rescans",
			rec: func() *Record {
				r := completeRecord()
				r.Untracked = status.UntrackedNormal
				return r
			},
			query: status.Query{Untracked: status.UntrackedAll, Ignored: status.IgnoredMatching},
			want:  Rescan,
		},
		{
			name: "broader scope rescans",
			rec: func() *Record {
				r := completeRecord()
				r.Scope = status.Scope{"src"}
				return r
			},
			query: status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredMatching},
			want:  Rescan,
		},
		{
			name: "narrower scope derives",
			rec:  completeRecord,
			query: status.Query{
				Untracked: status.UntrackedNormal,
				Ignored:   status.IgnoredMatching,
				Scope:     status.Scope{"src/sub"},
			},
			want: Derive,
		},
		{
			name: "branch requested but not recorded rescans",
			rec: func() *Record {
				r := completeRecord()
				r.Branch = nil
				return r
			},
			query: status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredMatching, Branch: true},
			want:  Rescan,
		},
		{
			name:  "branch recorded satisfies branch query",
			rec:   completeRecord,
			query: status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredMatching, Branch: true},
			want:  Derive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, reason := Evaluate(tt.rec(), tt.query)
			if got != tt.want {
				t.Errorf("Evaluate() = %v (%s), want %v", got, reason, tt.want)
			}
			if got == Rescan && reason == "" {
				t.Error("Evaluate() returned Rescan with empty reason")
			}
			if got == Derive && reason != "" {
				t.Errorf("Evaluate() returned Derive with reason %q", reason)
			}
		})
	}
}
