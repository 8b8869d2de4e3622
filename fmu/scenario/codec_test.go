package scenario

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SingleLine_ParsesNameInterpolationAndSeries(t *testing.T) {
	l, err := Decode("t;L;0,0;1,1")
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, "t", l[0].Name)
	assert.Equal(t, "L", l[0].Interpolation)
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, l[0].Series)
	assert.Equal(t, "t;L;0,0;1,1", Encode(l))
}

func TestDecode_MultipleLines_PreservesOrder(t *testing.T) {
	text := "t;L;0,0;1000,1000\nspeed;ZOH;0,1.5;2.25,-3\nangle;NN;0.5,0.125"
	l, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"t", "speed", "angle"}, l.Names())
	assert.Equal(t, []Point{{0, 1.5}, {2.25, -3}}, l[1].Series)
	assert.Equal(t, text, Encode(l))
}

func TestDecode_WhitespaceAroundNumbers_IsAccepted(t *testing.T) {
	l, err := Decode("x;L; 0 , 1 ;2,3")
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 1}, {2, 3}}, l[0].Series)
}

func TestDecode_Malformed_ReturnsLineError(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"too few fields", "t;L", 1},
		{"name only", "t", 1},
		{"empty text", "", 1},
		{"empty name", ";L;0,0", 1},
		{"comma in name", "t;L;0,0\na,b;L;0,0", 2},
		{"control character in name", "t;L;0,0;1,1\na\x01b;L;0,0", 2},
		{"invalid utf8 in name", "a\xffb;L;0,0", 1},
		{"control character in interpolation", "t;L\x02;0,0", 1},
		{"pair missing value", "t;L;0,0\ny;L;1", 2},
		{"pair with three tokens", "t;L;0,0,0", 1},
		{"non numeric time", "t;L;a,0", 1},
		{"non numeric value", "t;L;0,b", 1},
		{"decimal comma", "t;L;0,0\ny;ZOH;0,1,5", 2},
		{"trailing newline", "t;L;0,0\n", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.text)
			var mle *MalformedLineError
			require.True(t, errors.As(err, &mle), "expected MalformedLineError, got %v", err)
			assert.Equal(t, tc.line, mle.Line)
			assert.Contains(t, err.Error(), strconv.Quote(mle.Text))
		})
	}
}

func TestEncode_Floats_UseDotAndNoExponent(t *testing.T) {
	l := List{{Name: "v", Interpolation: "L", Series: []Point{{1e6, 0.1}, {1234567.5, -2e-7}}}}
	assert.Equal(t, "v;L;1000000,0.1;1234567.5,-0.0000002", Encode(l))
}

func TestRoundTrip_DecodeEncodeDecode_IsIdentity(t *testing.T) {
	inputs := []string{
		"t;L;0,0;1,1",
		"t;L;0,0;1000000,1000000\ny1;ZOH;0,0",
		"t;L;0,0;10,10\nwind;C;0,3.3333333333333335;0.1,0.30000000000000004;7,1e-300",
		"odd name with spaces;custom-tag;-1,-1;-1,2",
	}
	for _, in := range inputs {
		first, err := Decode(in)
		require.NoError(t, err)
		second, err := Decode(Encode(first))
		require.NoError(t, err)
		assert.Equal(t, first, second, "round trip of %q", in)
	}
}

func TestRoundTrip_NonFiniteValues(t *testing.T) {
	l := List{{Name: "x", Interpolation: "L", Series: []Point{{0, math.Inf(1)}, {1, math.Inf(-1)}}}}
	got, err := Decode(Encode(l))
	require.NoError(t, err)
	assert.Equal(t, l, got)
}

func TestValidText(t *testing.T) {
	for _, ok := range []string{"", "t", "speed [m/s]", "tab\there", "\u00e9\u4e2d\U0001F600", "\uFFFD"} {
		assert.True(t, ValidText(ok), "%q", ok)
	}
	for _, bad := range []string{"a\x01b", "\x00", "a\x1fb", "\xff", "\uFFFE"} {
		assert.False(t, ValidText(bad), "%q", bad)
	}
}
