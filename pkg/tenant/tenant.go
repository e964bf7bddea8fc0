package tenant

import "strings"

// TablePrefix is prepended to every normalized company name.
const TablePrefix = "group_"

// TableName maps a company display name to the physical table holding that
// company's equipment records: lower-case the name, replace every space with
// an underscore, prefix with "group_".
//
// An empty name yields the literal "group_". Punctuation, unicode and
// consecutive spaces pass through unchanged; two names that differ only in
// case or spacing resolve to the same table. Both behaviors are part of the
// naming convention the existing tenant tables were created under, so this
// function must not be made smarter without migrating those tables.
func TableName(companyName string) string {
	normalized := strings.ReplaceAll(strings.ToLower(companyName), " ", "_")
	return TablePrefix + normalized
}

// Collides reports whether two company names resolve to the same physical
// table. Used for the optional strict-names warning; nothing rejects the
// collision.
func Collides(a, b string) bool {
	return TableName(a) == TableName(b)
}
