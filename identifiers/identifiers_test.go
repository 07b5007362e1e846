package identifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsResolverURL(t *testing.T) {
	tests := []struct {
		url    string
		prefix string
		local  string
		ok     bool
	}{
		{"http://identifiers.org/taxonomy/9606", "taxonomy", "9606", true},
		{"https://identifiers.org/pubmed/1234567", "pubmed", "1234567", true},
		{"https://identifiers.org/GO:0008150", "go", "0008150", true},
		{"https://identifiers.org/doi/10.1016/j.copbio.2017.12.013", "doi", "10.1016/j.copbio.2017.12.013", true},
		{"https://example.org/taxonomy/9606", "", "", false},
		{"not a url", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			prefix, local, ok := IsResolverURL(tt.url)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.prefix, prefix)
				assert.Equal(t, tt.local, local)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		handled bool
		wantErr bool
	}{
		{"valid taxon", "http://identifiers.org/taxonomy/9606", true, false},
		{"invalid taxon", "http://identifiers.org/taxonomy/abc", true, true},
		{"valid biomodels", "http://identifiers.org/biomodels.db/BIOMD0000000075", true, false},
		{"unknown namespace", "http://identifiers.org/not-a-registry/x", true, true},
		{"not a resolver url", "https://example.org/page", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handled, err := Validate(tt.url)
			assert.Equal(t, tt.handled, handled)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
