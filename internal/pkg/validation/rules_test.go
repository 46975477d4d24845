package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInstitutionalEmail(t *testing.T) {
	const domain = "mgmcen.ac.in"

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain institutional address", email: "jane.doe@mgmcen.ac.in", want: true},
		{name: "subdomain address", email: "jane@cs.mgmcen.ac.in", want: true},
		{name: "uppercase is normalized", email: "JANE.DOE@MGMCEN.AC.IN", want: true},
		{name: "surrounding whitespace is trimmed", email: "  jane@mgmcen.ac.in  ", want: true},
		{name: "external domain", email: "jane@gmail.com", want: false},
		{name: "lookalike domain", email: "jane@notmgmcen.ac.in", want: false},
		{name: "missing local part", email: "@mgmcen.ac.in", want: false},
		{name: "not an email", email: "jane.doe", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInstitutionalEmail(tt.email, domain))
		})
	}
}
