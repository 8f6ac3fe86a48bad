package domain

import "strings"

// DefaultHost is the host used in generated links unless LINK_HOST overrides it.
const DefaultHost = "vdo.ninja"

// BuildURL composes the push link for pushID, adding the audience clause only when audience
// is not empty.
//
// Values are inserted verbatim, without query escaping, so links stay byte-identical to the
// ones already shared with viewers.
func BuildURL(host, pushID, audience string) string {
	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(host)
	b.WriteString("/?push=")
	b.WriteString(pushID)
	if audience != "" {
		b.WriteString("&audience=")
		b.WriteString(audience)
	}
	return b.String()
}

// Record is the persisted config file body. The JSON name is kept for compatibility with
// existing config files.
type Record struct {
	EncryptedURL string `json:"vdo_ninja_url"`
}
