// Package redact scrubs sensitive values from strings before they reach
// logs or error responses: emails, bcrypt hashes, JWTs, passwords, and
// database connection strings.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedHashPlaceholder       = "[REDACTED_HASH]"
	RedactedTokenPlaceholder      = "[REDACTED_JWT]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// bcrypt hashes ($2a$, $2b$, $2y$ variants)
	bcryptRegex = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)

	// Standard three-part base64url-encoded JWT
	jwtRegex = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

	// Passwords appearing in key=value or key: value form
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Database connection strings with embedded credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres(?:ql)?|mysql)://[^@\s]+@`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{jwtRegex, RedactedTokenPlaceholder},
		{bcryptRegex, RedactedHashPlaceholder},
		{dbConnRegex, RedactedCredentialPlaceholder},
		{passwordRegex, "$1$2" + RedactedCredentialPlaceholder},
		{emailRegex, RedactedEmailPlaceholder},
	}
)

// String returns s with every sensitive value replaced by a placeholder.
func String(s string) string {
	for _, pp := range patternPlaceholders {
		s = pp.pattern.ReplaceAllString(s, pp.placeholder)
	}
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
// Use this whenever an error of unknown provenance is logged; store and
// driver errors can embed emails, DSNs, or query fragments.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
