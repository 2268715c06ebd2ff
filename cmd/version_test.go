package cmd

import "testing"

func TestResolveVersionInfo(t *testing.T) {
	tests := []struct {
		name          string
		v, c, d       string
		moduleVersion string
		settings      map[string]string
		wantV         string
		wantC         string
		wantD         string
	}{
		{
			name: "ldflags win",
			v:    "v1.2.0", c: "abc123", d: "2026-08-01",
			moduleVersion: "v9.9.9",
			settings:      map[string]string{"vcs.revision": "deadbeef", "vcs.time": "never"},
			wantV:         "v1.2.0", wantC: "abc123", wantD: "2026-08-01",
		},
		{
			name: "build info fills defaults",
			v:    "dev", c: "none", d: "unknown",
			moduleVersion: "v0.3.1",
			settings: map[string]string{
				"vcs.revision": "0123456789abcdef0123",
				"vcs.time":     "2026-08-30T12:00:00Z",
			},
			wantV: "v0.3.1", wantC: "0123456789ab", wantD: "2026-08-30T12:00:00Z",
		},
		{
			name: "devel module version ignored",
			v:    "dev", c: "none", d: "unknown",
			moduleVersion: "(devel)",
			settings:      map[string]string{},
			wantV:         "dev", wantC: "none", wantD: "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, c, d := resolveVersionInfo(tc.v, tc.c, tc.d, tc.moduleVersion, tc.settings)
			if v != tc.wantV || c != tc.wantC || d != tc.wantD {
				t.Fatalf("got (%q,%q,%q) want (%q,%q,%q)", v, c, d, tc.wantV, tc.wantC, tc.wantD)
			}
		})
	}
}
