package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFeatureName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"details", false},
		{"heading-anchors", false},
		{"bbcode_inline", false},
		{"", true},
		{"Details", true},
		{"a b", true},
		{"emoji!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeatureName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "relative file", path: "emoji/custom.yml"},
		{name: "absolute cache", path: "/var/cache/prettytext/onebox.db"},
		{name: "empty", path: "", wantErr: true},
		{name: "traversal", path: "../../etc/passwd", wantErr: true},
		{name: "system dir", path: "/etc/shadow", wantErr: true},
		{name: "shell metachar", path: "cache;rm -rf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOrigin(t *testing.T) {
	allowed := []string{"localhost:8080", "http://127.0.0.1:8080"}

	assert.NoError(t, ValidateOrigin("http://localhost:8080", allowed))
	assert.NoError(t, ValidateOrigin("http://127.0.0.1:8080", allowed))
	assert.Error(t, ValidateOrigin("", allowed))
	assert.Error(t, ValidateOrigin("ftp://localhost:8080", allowed))
	assert.Error(t, ValidateOrigin("http://evil.example", allowed))
}
