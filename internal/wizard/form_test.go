package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plus and percent", in: "My+Project%21", want: "My Project!"},
		{name: "plain", in: "Demo", want: "Demo"},
		{name: "lowercase hex", in: "a%2cb", want: "a,b"},
		{name: "brackets", in: "features%5B%5D", want: "features[]"},
		{name: "truncated escape", in: "100%", want: "100%"},
		{name: "short escape", in: "%4", want: "%4"},
		{name: "non hex escape", in: "%zz", want: "%zz"},
		{name: "utf8 bytes", in: "caf%C3%A9", want: "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestParseFormKeepsOrderAndDropsBareSegments(t *testing.T) {
	pairs := ParseForm("step=2&orphan&project_name=My+Project%21&&features%5B%5D=A&features[]=B&empty=")

	require.Equal(t, []Pair{
		{Key: "step", Value: "2"},
		{Key: "project_name", Value: "My Project!"},
		{Key: "features[]", Value: "A"},
		{Key: "features[]", Value: "B"},
		{Key: "empty", Value: ""},
	}, pairs)
}

func TestParseFormSplitsOnFirstEquals(t *testing.T) {
	pairs := ParseForm("project_name=a=b")
	require.Equal(t, []Pair{{Key: "project_name", Value: "a=b"}}, pairs)
}

func TestParseFormEmpty(t *testing.T) {
	require.Nil(t, ParseForm(""))
}

func TestLookupReturnsLastValue(t *testing.T) {
	pairs := ParseForm("step=1&reset=1&step=3")

	v, ok := Lookup(pairs, "step")
	require.True(t, ok)
	require.Equal(t, "3", v)

	_, ok = Lookup(pairs, "missing")
	require.False(t, ok)
}
