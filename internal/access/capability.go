package access

import "strings"

// Capabilities maps canonical capability names ("canPayinList") to true.
// Absent keys read as false, so consumers can index the map directly.
type Capabilities map[string]bool

// Project turns a user's flat permission strings into capability flags. Each
// permission is a dash/dot/underscore-delimited token sequence; "payin-list"
// becomes "canPayinList", "bank.acct-list" becomes "canBankAcctList".
//
// canAdmin derives only from the role field, never from the permission list.
func Project(role string, permissions []string) Capabilities {
	caps := make(Capabilities, len(permissions)+1)
	for _, perm := range permissions {
		if name := CapabilityName(perm); name != "can" && name != "canAdmin" {
			caps[name] = true
		}
	}
	if role == "admin" {
		caps["canAdmin"] = true
	}
	return caps
}

// CapabilityName converts one permission string into its capability name.
func CapabilityName(permission string) string {
	tokens := strings.FieldsFunc(permission, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
	var b strings.Builder
	b.WriteString("can")
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		b.WriteString(strings.ToUpper(tok[:1]))
		if len(tok) > 1 {
			b.WriteString(strings.ToLower(tok[1:]))
		}
	}
	return b.String()
}
