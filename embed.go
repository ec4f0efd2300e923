package epsilon

import "embed"

// EmailFS holds the html/plaintext template pairs rendered by internal/email.
//
//go:embed templates/emails
var EmailFS embed.FS
