package errors

import "testing"

func TestValidateExporterName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"jsonGraph", false},
		{"csv-stats_2", false},
		{"", true},
		{"json graph", true},
		{"../etc", true},
		{"gráph", true},
		{string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateExporterName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExporterName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateExporterName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"graph.json", false},
		{"contribution_stats.csv", false},
		{".hidden", false},
		{"", true},
		{"..", true},
		{"dir/graph.json", true},
		{`dir\graph.json`, true},
		{"graph\x00.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateFilename(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}
