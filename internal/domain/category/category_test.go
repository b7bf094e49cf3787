package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "with hash", in: "#1F6FEB", want: "1f6feb"},
		{name: "without hash", in: "1f6feb", want: "1f6feb"},
		{name: "uppercase normalized", in: "ABCDEF", want: "abcdef"},
		{name: "too short", in: "fff", wantErr: true},
		{name: "non hex", in: "zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeColor(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Hardware", "#1f6feb")
	require.NoError(t, err)

	assert.Equal(t, "Hardware", c.Name())
	assert.Equal(t, "1f6feb", c.Color())
	assert.Equal(t, 1, c.Version())
}

func TestNewCategory_Invalid(t *testing.T) {
	_, err := NewCategory("", "1f6feb")
	require.Error(t, err)

	_, err = NewCategory("Hardware", "red")
	require.Error(t, err)
}

func TestCategory_RenameRecolor(t *testing.T) {
	c, err := NewCategory("Hardware", "1f6feb")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Network"))
	assert.Equal(t, "Network", c.Name())

	require.NoError(t, c.Recolor("#FF0000"))
	assert.Equal(t, "ff0000", c.Color())

	require.Error(t, c.Recolor("nope"))
}
