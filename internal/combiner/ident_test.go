package combiner

import "testing"

func TestIdentifierExtract(t *testing.T) {
	p := NewIdentifierPattern("MED")

	tests := []struct {
		name     string
		filename string
		content  string
		want     string
		wantOK   bool
	}{
		{
			name:     "identifier in filename",
			filename: "clip-MED-042a-final.srt",
			want:     "MED-042a",
			wantOK:   true,
		},
		{
			name:     "identifier without letter",
			filename: "MED-123.srt",
			want:     "MED-123",
			wantOK:   true,
		},
		{
			name:     "letter case canonicalized",
			filename: "med-042A.srt",
			want:     "MED-042a",
			wantOK:   true,
		},
		{
			name:     "fallback to content",
			filename: "spoken.srt",
			content:  "1\n00:00:01,000 --> 00:00:02,000\nProgram MED-777b intro\n",
			want:     "MED-777b",
			wantOK:   true,
		},
		{
			name:     "filename wins over content",
			filename: "MED-001.srt",
			content:  "mentions MED-999 inside",
			want:     "MED-001",
			wantOK:   true,
		},
		{
			name:     "four digits do not match",
			filename: "MED-1234.srt",
			wantOK:   false,
		},
		{
			name:     "underscore after code still matches",
			filename: "MED-042_spoken.srt",
			want:     "MED-042",
			wantOK:   true,
		},
		{
			name:     "no match anywhere",
			filename: "plain.srt",
			content:  "nothing to see",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Extract(tt.filename, tt.content)
			if ok != tt.wantOK {
				t.Fatalf("Extract() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}
