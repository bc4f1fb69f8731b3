// Package address converts between the shorthand and canonical forms of an
// email address used in transmission payloads.
//
// The shorthand form is a single string, either a bare address
// ("jane@example.com") or a named one ("\"Jane Doe\" <jane@example.com>").
// The canonical form is the object the API expects:
//
//	{"name": "Jane Doe", "email": "jane@example.com", "header_to": "..."}
package address

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/sparkpost/client-go/internal/apierrors"
)

// Canonical address keys.
const (
	KeyName     = "name"
	KeyEmail    = "email"
	KeyHeaderTo = "header_to"
)

// namedPattern matches `Name <email>` with optional quotes around the name.
var namedPattern = regexp.MustCompile(`^\s*"?([^"<]*?)"?\s*<([^<>]+)>\s*$`)

// Address is the typed canonical form of an address.
type Address struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	HeaderTo string `json:"header_to,omitempty"`
}

// Map returns the address as a JSON-shaped map, omitting empty fields.
func (a Address) Map() map[string]any {
	m := map[string]any{KeyEmail: a.Email}
	if a.Name != "" {
		m[KeyName] = a.Name
	}
	if a.HeaderTo != "" {
		m[KeyHeaderTo] = a.HeaderTo
	}
	return m
}

// String returns the shorthand form of the address.
func (a Address) String() string {
	if a.Name != "" {
		return `"` + a.Name + `" <` + a.Email + `>`
	}
	return a.Email
}

// Parse converts a shorthand string into an Address.
func Parse(s string) (Address, error) {
	if IsEmail(s) {
		return Address{Email: s}, nil
	}

	m := namedPattern.FindStringSubmatch(s)
	if m == nil {
		return Address{}, &apierrors.AddressFormatError{Address: s}
	}

	email := strings.TrimSpace(m[2])
	if email == "" {
		return Address{}, &apierrors.AddressFormatError{Address: s}
	}
	return Address{Name: strings.TrimSpace(m[1]), Email: email}, nil
}

// IsEmail reports whether s is a bare RFC 5322 address with no display name.
func IsEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	// Require a dotted domain with no empty labels, as most validators do.
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

// ToCanonical converts a payload address value into its canonical map form.
//
// Maps are returned as is. Strings are parsed as shorthand. Address values
// are converted with Map.
func ToCanonical(v any) (map[string]any, error) {
	switch a := v.(type) {
	case map[string]any:
		return a, nil
	case map[string]string:
		m := make(map[string]any, len(a))
		for k, val := range a {
			m[k] = val
		}
		return m, nil
	case Address:
		return a.Map(), nil
	case *Address:
		if a == nil {
			return nil, &apierrors.PayloadError{Field: "address", Message: "nil address"}
		}
		return a.Map(), nil
	case string:
		parsed, err := Parse(a)
		if err != nil {
			return nil, err
		}
		return parsed.Map(), nil
	}
	return nil, &apierrors.PayloadError{Field: "address", Message: fmt.Sprintf("unsupported type %T", v)}
}

// DisplayString converts a payload address value into its shorthand form.
// Strings are returned unchanged.
func DisplayString(v any) (string, error) {
	switch a := v.(type) {
	case string:
		return a, nil
	case Address:
		return a.String(), nil
	case *Address:
		if a != nil {
			return a.String(), nil
		}
	case map[string]any:
		return displayFromMap(a[KeyName], a[KeyEmail])
	case map[string]string:
		var name any
		if n, ok := a[KeyName]; ok {
			name = n
		}
		return displayFromMap(name, a[KeyEmail])
	}
	return "", &apierrors.PayloadError{Field: "address", Message: fmt.Sprintf("unsupported type %T", v)}
}

func displayFromMap(name, email any) (string, error) {
	e, ok := email.(string)
	if !ok {
		return "", &apierrors.PayloadError{Field: "address.email", Message: "missing or not a string"}
	}
	if n, ok := name.(string); ok {
		return `"` + n + `" <` + e + `>`, nil
	}
	return e, nil
}
