package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableName(t *testing.T) {
	testCases := []struct {
		name     string
		company  string
		expected string
	}{
		{"simple name", "Acme Corp", "group_acme_corp"},
		{"already lower case", "acme corp", "group_acme_corp"},
		{"all caps", "ACME CORP", "group_acme_corp"},
		{"empty name", "", "group_"},
		{"single word", "Globex", "group_globex"},
		{"punctuation passes through", "Acme-Corp", "group_acme-corp"},
		{"unicode passes through", "Müller GmbH", "group_müller_gmbh"},
		{"double space keeps both underscores", "Acme  Corp", "group_acme__corp"},
		{"leading and trailing spaces", " Acme ", "group__acme_"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TableName(tc.company))
		})
	}
}

func TestTableName_CaseAndSpaceInsensitive(t *testing.T) {
	assert.Equal(t, TableName("ACME CORP"), TableName("acme corp"))
	assert.Equal(t, TableName("Acme Corp"), TableName("acme corp"))
}

func TestCollides(t *testing.T) {
	// Differing only in case or spacing collides; punctuation does not.
	assert.True(t, Collides("Acme Corp", "ACME CORP"))
	assert.True(t, Collides("Acme  Corp", "Acme _Corp"))
	assert.False(t, Collides("Acme-Corp", "Acme Corp"))
	assert.False(t, Collides("Acme", "Globex"))
}
