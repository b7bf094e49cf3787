package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_BlankPasswordPreserved(t *testing.T) {
	current := Default()
	current.EmailServer.SMTPPassword = "secret"

	update := Default()
	update.EmailServer.SMTPHost = "smtp.example.com"
	update.EmailServer.SMTPPassword = ""

	current.Merge(update)

	assert.Equal(t, "smtp.example.com", current.EmailServer.SMTPHost)
	assert.Equal(t, "secret", current.EmailServer.SMTPPassword, "blank submitted password must keep the stored one")
}

func TestMerge_NewPasswordApplied(t *testing.T) {
	current := Default()
	current.EmailServer.SMTPPassword = "old"

	update := Default()
	update.EmailServer.SMTPPassword = "new"

	current.Merge(update)
	assert.Equal(t, "new", current.EmailServer.SMTPPassword)
}

func TestMerge_NilWhitelistNormalized(t *testing.T) {
	current := Default()
	update := &Document{}

	current.Merge(update)
	assert.NotNil(t, current.Register.EmailWhitelist)
}

func TestRedacted(t *testing.T) {
	doc := Default()
	doc.EmailServer.SMTPPassword = "secret"

	red := doc.Redacted()
	assert.Empty(t, red.EmailServer.SMTPPassword)
	assert.Equal(t, "secret", doc.EmailServer.SMTPPassword, "redaction must not mutate the source")
}

func TestEmailChanged(t *testing.T) {
	a := Default()
	b := Default()
	assert.False(t, a.EmailChanged(b))

	b.EmailServer.SMTPHost = "smtp.example.com"
	assert.True(t, a.EmailChanged(b))

	c := Default()
	c.General.MemeMode = true
	assert.False(t, a.EmailChanged(c), "non-SMTP changes must not trigger a reload")
}
