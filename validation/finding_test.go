package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinding_MarshalJSON_Leaf(t *testing.T) {
	data, err := json.Marshal(New("location is not set"))
	require.NoError(t, err)
	assert.JSONEq(t, `["location is not set"]`, string(data))
}

func TestFinding_MarshalJSON_Grouped(t *testing.T) {
	f := Group("content 2 is invalid", []Finding{
		New("format is not set"),
		Group("nested", []Finding{New("inner")}),
	})
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t,
		`["content 2 is invalid",[["format is not set"],["nested",[["inner"]]]]]`,
		string(data))
}

func TestFinding_RoundTrip(t *testing.T) {
	f := Group("outer", []Finding{New("a"), Group("b", []Finding{New("c")})})
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var back Finding
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, f, back)
}

func TestFinding_Flatten(t *testing.T) {
	f := Group("outer", []Finding{New("a"), Group("b", []Finding{New("c")})})
	assert.Equal(t, []string{"outer", "a", "b", "c"}, f.Flatten())
}

func TestAnyContains(t *testing.T) {
	findings := []Finding{
		Group("outer", []Finding{New("title is required")}),
	}
	assert.True(t, AnyContains(findings, "required"))
	assert.False(t, AnyContains(findings, "missing"))
}

func TestIndent(t *testing.T) {
	out := Indent([]Finding{Group("outer", []Finding{New("inner")})}, "")
	assert.Equal(t, "- outer\n  - inner\n", out)
}
