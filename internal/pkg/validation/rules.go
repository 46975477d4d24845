package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern is the general email shape check applied before the
	// institutional-domain suffix check
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength for registration and password changes
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsInstitutionalEmail reports whether email is well-formed and ends in the
// given institutional domain. The check runs before any credential work.
func IsInstitutionalEmail(email, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if !CompiledPatterns.Email.MatchString(email) {
		return false
	}
	return strings.HasSuffix(email, "@"+strings.ToLower(domain)) ||
		strings.HasSuffix(email, "."+strings.ToLower(domain))
}
