package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSet_AddAndHas(t *testing.T) {
	var s TagSet

	assert.True(t, s.Add("phone"))
	assert.True(t, s.Has("phone"))
	assert.Equal(t, 1, s.Len())
}

func TestTagSet_CaseInsensitiveIdentity(t *testing.T) {
	var s TagSet

	require.True(t, s.Add("Phone"))
	assert.False(t, s.Add("phone"), "case variant is a duplicate")
	assert.False(t, s.Add("PHONE"))

	assert.True(t, s.Has("phone"))
	assert.True(t, s.Has("PHONE"))

	// Original casing is preserved for display.
	assert.Equal(t, []string{"Phone"}, s.Names())
}

func TestTagSet_RejectsEmptyAndTrims(t *testing.T) {
	var s TagSet

	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   "))
	assert.True(t, s.Add(" home "))
	assert.Equal(t, []string{"home"}, s.Names(), "tags are trimmed")
}

func TestTagSet_InsertionOrder(t *testing.T) {
	var s TagSet
	for _, tag := range []string{"zeta", "alpha", "mid"} {
		s.Add(tag)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Names())
}

func TestTagSet_MarshalJSON(t *testing.T) {
	var s TagSet
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b), "empty set encodes as empty array, not null")

	s.Add("Phone")
	s.Add("home")
	b, err = json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["Phone","home"]`, string(b))
}

func TestFoldTag_Unicode(t *testing.T) {
	assert.Equal(t, FoldTag("BÜRO"), FoldTag("büro"), "folding is not ASCII-only")
}
