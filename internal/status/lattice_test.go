package status

import "testing"

var allUntrackedModes = []UntrackedMode{
	UntrackedNone, UntrackedNormal, UntrackedAll, UntrackedComplete,
}

func TestCanDerive_Identity(t *testing.T) {
	t.Parallel()

	for _, m := range allUntrackedModes {
		if !CanDerive(m, m) {
			t.Errorf("CanDerive(%s, %s) = false, want true", m, m)
		}
	}
}

func TestCanDerive_NoneFromAnything(t *testing.T) {
	t.Parallel()

	for _, m := range allUntrackedModes {
		if !CanDerive(m, UntrackedNone) {
			t.Errorf("CanDerive(%s, none) = false, want true", m)
		}
	}
}

func TestCanDerive_Pairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		recorded  UntrackedMode
		requested UntrackedMode
		want      bool
	}{
		{"complete derives normal", UntrackedComplete, UntrackedNormal, true},
		{"complete derives all", UntrackedComplete, UntrackedAll, true},
		{"complete derives none", UntrackedComplete, UntrackedNone, true},
		{"normal cannot derive all", UntrackedNormal, UntrackedAll, false},
		{"all cannot derive normal", UntrackedAll, UntrackedNormal, false},
		{"normal cannot derive complete", UntrackedNormal, UntrackedComplete, false},
		{"all cannot derive complete", UntrackedAll, UntrackedComplete, false},
		{"none cannot derive normal", UntrackedNone, UntrackedNormal, false},
		{"none cannot derive all", UntrackedNone, UntrackedAll, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CanDerive(tt.recorded, tt.requested); got != tt.want {
				t.Errorf("CanDerive(%s, %s) = %v, want %v", tt.recorded, tt.requested, got, tt.want)
			}
		})
	}
}

func TestIgnoredCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		recorded  IgnoredMode
		requested IgnoredMode
		want      bool
	}{
		{IgnoredDisabled, IgnoredDisabled, true},
		{IgnoredMatching, IgnoredMatching, true},
		{IgnoredDisabled, IgnoredMatching, false},
		{IgnoredMatching, IgnoredDisabled, false},
	}

	for _, tt := range tests {
		if got := IgnoredCompatible(tt.recorded, tt.requested); got != tt.want {
			t.Errorf("IgnoredCompatible(%s, %s) = %v, want %v", tt.recorded, tt.requested, got, tt.want)
		}
	}
}

func TestParseUntrackedMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    UntrackedMode
		wantErr bool
	}{
		{"no", UntrackedNone, false},
		{"none", UntrackedNone, false},
		{"normal", UntrackedNormal, false},
		{"all", UntrackedAll, false},
		{"complete", "", true},
		{"", "", true},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := ParseUntrackedMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUntrackedMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUntrackedMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
