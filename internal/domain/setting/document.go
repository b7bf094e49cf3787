package setting

// Document is the site settings singleton, persisted as one JSON file.
// Section structs map one-to-one onto the stored document.
type Document struct {
	General     General     `json:"general"`
	EmailServer EmailServer `json:"email_server"`
	Content     Content     `json:"content"`
	Register    Register    `json:"register"`
	Legal       Legal       `json:"legal"`
}

type General struct {
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	AllowLocation bool   `json:"allow_location"`
	ForceLocation bool   `json:"force_location"`
	MemeMode      bool   `json:"meme_mode"`
}

type EmailServer struct {
	SMTPHost     string `json:"smtp_host" validate:"omitempty,hostname|ip"`
	SMTPPort     int    `json:"smtp_port" validate:"gte=0,lte=65535"`
	SMTPUseTLS   bool   `json:"smtp_use_tls"`
	SMTPUseSSL   bool   `json:"smtp_use_ssl"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`
}

type Content struct {
	Frontpage string `json:"frontpage"`
	HalfPage  string `json:"half_page"`
	Imprint   string `json:"imprint"`
}

type Register struct {
	AllowCustomNickname  bool     `json:"allow_custom_nickname"`
	EmailWhitelistEnable bool     `json:"email_whitelist_enable"`
	EmailWhitelist       []string `json:"email_whitelist" validate:"omitempty,dive,email|fqdn"`
}

type Legal struct {
	PrivacyAndPolicy string `json:"privacy_and_policy"`
}

// Default returns the document written on first run.
func Default() *Document {
	return &Document{
		General: General{
			AllowLocation: true,
		},
		EmailServer: EmailServer{
			SMTPPort:   587,
			SMTPUseTLS: true,
		},
		Register: Register{
			EmailWhitelist: []string{},
		},
	}
}

// Merge applies an update onto the current document. A blank submitted
// SMTP password keeps the stored credential so reads never have to echo
// it back to clients.
func (d *Document) Merge(update *Document) {
	storedPassword := d.EmailServer.SMTPPassword

	*d = *update

	if d.EmailServer.SMTPPassword == "" {
		d.EmailServer.SMTPPassword = storedPassword
	}
	if d.Register.EmailWhitelist == nil {
		d.Register.EmailWhitelist = []string{}
	}
}

// Redacted returns a copy safe to return to clients: the SMTP password
// is blanked.
func (d *Document) Redacted() *Document {
	c := *d
	c.EmailServer.SMTPPassword = ""
	return &c
}

// EmailChanged reports whether the SMTP section differs between two
// documents, signalling an email service reload.
func (d *Document) EmailChanged(other *Document) bool {
	return d.EmailServer != other.EmailServer
}
