package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grouped() Snapshot {
	s := FromString("1234", Content)
	s.Insert(1, Symbol{Character: ",", Attribute: Phantom})
	return s
}

func TestFromStringSegmentsGraphemes(t *testing.T) {
	s := FromString("é👍🏽1", Content)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, "é", s.At(0).Character)
	assert.Equal(t, "👍🏽", s.At(1).Character)
	assert.Equal(t, "1", s.At(2).Character)
}

func TestSnapshotCharactersAndContent(t *testing.T) {
	s := grouped()

	assert.Equal(t, "1,234", s.Characters())
	assert.Equal(t, "1234", s.Content())
	assert.Equal(t, []Attribute{Content, Phantom, Content, Content, Content}, s.Attributes())
	assert.True(t, s.HasContent())
}

func TestSnapshotMutationDoesNotLeak(t *testing.T) {
	s := FromString("12", Content)
	copied := s

	s.Append(Symbol{Character: "3"})
	copied.Append(Symbol{Character: "9"})

	assert.Equal(t, "123", s.Characters())
	assert.Equal(t, "129", copied.Characters())
}

func TestSnapshotReplaceSubrange(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		with string
		want string
	}{
		{"insert", Caret(2), "5", "1,5234"},
		{"delete", NewRange(2, 4), "", "1,4"},
		{"replace all", NewRange(0, 5), "9", "9"},
		{"clamped", NewRange(3, 99), "", "1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := grouped()
			s.ReplaceSubrange(tt.r, Symbols(tt.with, Content))
			assert.Equal(t, tt.want, s.Characters())
		})
	}
}

func TestSnapshotStructuralEditsClearAnchor(t *testing.T) {
	s := FromString("(__)", Phantom)
	s.SetAnchor(1)

	s.Append(Symbol{Character: "!", Attribute: Suffix})
	anchor, ok := s.Anchor()
	require.True(t, ok, "append keeps the anchor")
	assert.Equal(t, 1, anchor)

	s.Insert(0, Symbol{Character: "+", Attribute: Prefix})
	_, ok = s.Anchor()
	assert.False(t, ok, "insert clears the anchor")
}

func TestSnapshotTransform(t *testing.T) {
	s := FromString("$12", Content)
	s.Transform(NewRange(0, 1), func(Attribute) Attribute { return Prefix })

	want := []Symbol{
		{Character: "$", Attribute: Prefix},
		{Character: "1", Attribute: Content},
		{Character: "2", Attribute: Content},
	}
	if diff := cmp.Diff(want, s.Symbols()); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "12", s.Content())
}

func TestSnapshotConcatAnchors(t *testing.T) {
	left := FromString("ab", Prefix)
	right := FromString("cd", Content)
	right.SetAnchor(1)

	joined := left.Concat(right)
	anchor, ok := joined.Anchor()
	require.True(t, ok)
	assert.Equal(t, 3, anchor, "right anchor is shifted by the left length")

	left.SetAnchor(0)
	joined = left.Concat(right)
	anchor, ok = joined.Anchor()
	require.True(t, ok)
	assert.Equal(t, 0, anchor, "left anchor wins")
	assert.Equal(t, "abcd", joined.Characters())
}

func TestSnapshotSlice(t *testing.T) {
	s := grouped()
	s.SetAnchor(3)

	sub := s.Slice(NewRange(2, 5))
	assert.Equal(t, "234", sub.Characters())
	anchor, ok := sub.Anchor()
	require.True(t, ok)
	assert.Equal(t, 1, anchor)
}

func TestSnapshotEqual(t *testing.T) {
	assert.True(t, grouped().Equal(grouped()))

	other := grouped()
	other.Transform(NewRange(1, 2), func(Attribute) Attribute { return Content })
	assert.False(t, grouped().Equal(other))

	assert.True(t, Snapshot{}.Equal(New()))
}

func TestAttributeEscape(t *testing.T) {
	assert.Equal(t, Forward, Prefix.Escape())
	assert.Equal(t, Backward, Suffix.Escape())
	assert.Equal(t, None, Phantom.Escape())
	assert.Equal(t, None, Content.Escape())
	assert.False(t, Content.Virtual())
	assert.True(t, Phantom.Removable())
	assert.True(t, Suffix.Insertable())
}
