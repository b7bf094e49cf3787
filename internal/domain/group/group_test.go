package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Admin", "admin"},
		{"Support Team", "support-team"},
		{"  Hardware / Network  ", "hardware-network"},
		{"moderator", "moderator"},
		{"---", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestNewGroup(t *testing.T) {
	g, err := NewGroup("Support Team", []uint{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, "Support Team", g.Name())
	assert.Equal(t, "support-team", g.Slug())
	assert.False(t, g.IsReserved())
	assert.Equal(t, []uint{1, 2, 3}, g.PermissionIDs())
}

func TestNewGroup_InvalidName(t *testing.T) {
	_, err := NewGroup("", nil)
	require.Error(t, err)

	_, err = NewGroup("###", nil)
	require.Error(t, err)
}

func TestGroup_RenameReservedRejected(t *testing.T) {
	now := time.Now()
	g, err := ReconstructGroup(1, "admin", "admin", true, nil, now, now, 1)
	require.NoError(t, err)

	err = g.Rename("administrators")
	require.Error(t, err)
	assert.Equal(t, "admin", g.Name())
}

func TestGroup_Rename(t *testing.T) {
	g, err := NewGroup("Helpers", nil)
	require.NoError(t, err)

	require.NoError(t, g.Rename("First Level"))
	assert.Equal(t, "First Level", g.Name())
	assert.Equal(t, "first-level", g.Slug())
}

func TestGroup_ReplacePermissions(t *testing.T) {
	g, err := NewGroup("Helpers", []uint{1})
	require.NoError(t, err)

	g.ReplacePermissions([]uint{2, 3})
	assert.Equal(t, []uint{2, 3}, g.PermissionIDs())

	g.ReplacePermissions(nil)
	assert.Empty(t, g.PermissionIDs())
	assert.NotNil(t, g.PermissionIDs())
}

func TestPermission_Code(t *testing.T) {
	p, err := NewPermission("ticket", "hide", "May hide tickets")
	require.NoError(t, err)

	assert.Equal(t, "ticket:hide", p.Code())
}
