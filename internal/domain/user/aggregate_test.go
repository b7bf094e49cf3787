package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/user/valueobjects"
)

func mustUsername(t *testing.T, s string) *vo.Username {
	t.Helper()
	u, err := vo.NewUsername(s)
	require.NoError(t, err)
	return u
}

func mustEmail(t *testing.T, s string) *vo.Email {
	t.Helper()
	e, err := vo.NewEmail(s)
	require.NoError(t, err)
	return e
}

func mustName(t *testing.T, first, last string) *vo.PersonName {
	t.Helper()
	n, err := vo.NewPersonName(first, last)
	require.NoError(t, err)
	return n
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(
		mustUsername(t, "jdoe"),
		mustEmail(t, "jdoe@example.com"),
		mustName(t, "Jane", "Doe"),
		"$2a$12$hash",
	)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)

	assert.Equal(t, "jdoe", u.Username().String())
	assert.Equal(t, "jdoe@example.com", u.Email().String())
	assert.True(t, u.IsActive(), "new accounts start active")
	assert.False(t, u.IsEmailConfirmed(), "email starts unconfirmed")
	assert.False(t, u.IsSuperuser())
	assert.False(t, u.IsReserved())
	assert.False(t, u.CanLogin(), "unconfirmed email blocks login")
}

func TestNewUser_MissingFields(t *testing.T) {
	email := mustEmail(t, "a@b.com")
	name := mustName(t, "A", "B")
	username := mustUsername(t, "ab")

	_, err := NewUser(nil, email, name, "h")
	require.Error(t, err)
	_, err = NewUser(username, nil, name, "h")
	require.Error(t, err)
	_, err = NewUser(username, email, nil, "h")
	require.Error(t, err)
	_, err = NewUser(username, email, name, "")
	require.Error(t, err)
}

func TestUser_ConfirmEmailPromotesPending(t *testing.T) {
	u := newTestUser(t)
	require.NoError(t, u.RequestEmailChange(mustEmail(t, "new@example.com")))
	require.False(t, u.IsEmailConfirmed())

	u.ConfirmEmail()

	assert.True(t, u.IsEmailConfirmed())
	assert.Equal(t, "new@example.com", u.Email().String())
	assert.Nil(t, u.NewEmail())
	assert.Nil(t, u.ActivationTokenHash())
	assert.True(t, u.CanLogin())
}

func TestUser_RequestEmailChange_SameAddressClearsPending(t *testing.T) {
	u := newTestUser(t)
	u.ConfirmEmail()

	require.NoError(t, u.RequestEmailChange(mustEmail(t, "jdoe@example.com")))
	assert.Nil(t, u.NewEmail())
	assert.True(t, u.IsEmailConfirmed())
}

func TestUser_ReplaceGroupsRecomputesSuperuser(t *testing.T) {
	const adminGroupID = 1

	u := newTestUser(t)
	u.ReplaceGroups([]uint{adminGroupID, 3}, adminGroupID)
	assert.True(t, u.IsSuperuser())
	assert.True(t, u.IsStaff())

	u.ReplaceGroups([]uint{3}, adminGroupID)
	assert.False(t, u.IsSuperuser(), "leaving the admin group must clear superuser")
	assert.False(t, u.IsStaff())

	u.ReplaceGroups(nil, adminGroupID)
	assert.NotNil(t, u.GroupIDs())
	assert.Empty(t, u.GroupIDs())
}

func TestUser_ChangePasswordClearsResetToken(t *testing.T) {
	u := newTestUser(t)
	hash := "sha256hash"
	u.SetPasswordResetToken(hash, time.Now().Add(30*time.Minute))
	require.NotNil(t, u.PasswordResetTokenHash())

	require.NoError(t, u.ChangePassword("$2a$12$newhash"))

	assert.Equal(t, "$2a$12$newhash", u.PasswordHash())
	assert.Nil(t, u.PasswordResetTokenHash())
	assert.Nil(t, u.PasswordResetExpiresAt())
}

func TestUser_SetActive(t *testing.T) {
	u := newTestUser(t)
	u.ConfirmEmail()
	require.True(t, u.CanLogin())

	u.SetActive(false)
	assert.False(t, u.CanLogin())

	u.SetActive(true)
	assert.True(t, u.CanLogin())
}

func TestReconstructUser(t *testing.T) {
	now := time.Now()
	tokenHash := "deadbeef"
	expires := now.Add(24 * time.Hour)

	u, err := ReconstructUser(
		7,
		mustUsername(t, "ghost"),
		mustEmail(t, "ghost@example.com"),
		mustName(t, "", ""),
		ReconstructState{
			PasswordHash:        "!",
			Active:              false,
			EmailConfirmed:      true,
			Reserved:            true,
			GroupIDs:            nil,
			ActivationTokenHash: &tokenHash,
			ActivationExpiresAt: &expires,
		},
		now, now, 1,
	)
	require.NoError(t, err)

	assert.Equal(t, uint(7), u.ID())
	assert.True(t, u.IsReserved())
	assert.False(t, u.IsActive())
	assert.NotNil(t, u.GroupIDs())
	assert.Equal(t, &tokenHash, u.ActivationTokenHash())
}

func TestPassword_MinLength(t *testing.T) {
	_, err := vo.NewPassword("short")
	require.ErrorIs(t, err, vo.ErrPasswordTooShort)

	p, err := vo.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.String())
}
