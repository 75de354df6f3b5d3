package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDropFileName(t *testing.T) {
	tests := []struct {
		name               string
		path               string
		expectedTarget     string
		expectedRootDomain string
		expectedOK         bool
	}{
		{
			name:               "Well Formed",
			path:               "/drop/acme__acme.com.txt",
			expectedTarget:     "acme",
			expectedRootDomain: "acme.com",
			expectedOK:         true,
		},
		{
			name:       "Wrong Extension",
			path:       "/drop/acme__acme.com.csv",
			expectedOK: false,
		},
		{
			name:       "No Separator",
			path:       "/drop/acme.com.txt",
			expectedOK: false,
		},
		{
			name:       "Empty Target",
			path:       "/drop/__acme.com.txt",
			expectedOK: false,
		},
		{
			name:               "Separator In Root Domain Kept",
			path:               "/drop/acme__sub__acme.com.txt",
			expectedTarget:     "acme",
			expectedRootDomain: "sub__acme.com",
			expectedOK:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, rootDomain, ok := parseDropFileName(tt.path)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedTarget, target)
				assert.Equal(t, tt.expectedRootDomain, rootDomain)
			}
		})
	}
}
