package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://api:8000", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api:8000"},
		},
		{
			name:    "equals form",
			args:    []string{"-t=30", "-a", "host"},
			allowed: []string{"-t"},
			want:    []string{"-t=30"},
		},
		{
			name:    "double dash is the same flag",
			args:    []string{"--config=alt.json", "-c", "other.json"},
			allowed: []string{"-c", "-config"},
			want:    []string{"--config=alt.json", "-c", "other.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag at end keeps no value",
			args:    []string{"-r"},
			allowed: []string{"-r"},
			want:    []string{"-r"},
		},
		{
			name:    "next flag is not a value",
			args:    []string{"-s", "-l", "debug"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterArgs_NeverNil(t *testing.T) {
	got := FilterArgs(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFile([]string{"-c", "a.json", "-a", "x"}))
	assert.Equal(t, "b.json", ConfigFile([]string{"-a", "x", "-config=b.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", "x"}))
}
