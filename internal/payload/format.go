// Package payload rewrites a transmission payload into the form the API
// expects: bcc and cc lists are folded into recipients and every shorthand
// address is expanded to its canonical object.
package payload

import (
	"fmt"
	"strings"

	"github.com/sparkpost/client-go/internal/address"
	"github.com/sparkpost/client-go/internal/apierrors"
)

// Payload keys.
const (
	KeyRecipients = "recipients"
	KeyContent    = "content"
	KeyFrom       = "from"
	KeyHeaders    = "headers"
	KeyAddress    = "address"
	KeyCC         = "cc"
	KeyBCC        = "bcc"
	KeyListID     = "list_id"
	HeaderCC      = "CC"
)

// HasRecipientList reports whether the payload carries a literal recipients
// list, as opposed to a stored list reference ({"list_id": ...}).
func HasRecipientList(p map[string]any) bool {
	r, ok := p[KeyRecipients]
	if !ok || r == nil {
		return false
	}
	switch ref := r.(type) {
	case map[string]any:
		_, isRef := ref[KeyListID]
		return !isRef
	case map[string]string:
		_, isRef := ref[KeyListID]
		return !isRef
	}
	return true
}

// Format returns the canonical wire form of a transmission payload.
//
// Payloads without a literal recipients list are returned unmodified. The
// input is never mutated; the result is a deep copy. Any address that cannot
// be parsed aborts the whole operation.
func Format(in map[string]any) (map[string]any, error) {
	if !HasRecipientList(in) {
		return in, nil
	}

	p, _ := Clone(in).(map[string]any)

	recipients, err := entryList(p[KeyRecipients], KeyRecipients)
	if err != nil {
		return nil, err
	}

	// header_to always points at the first recipient of the input payload.
	anchor := &headerTo{first: recipients}

	if recipients, err = foldBCC(p, recipients, anchor); err != nil {
		return nil, err
	}
	if recipients, err = foldCC(p, recipients, anchor); err != nil {
		return nil, err
	}
	if err := expandShorthand(p, recipients); err != nil {
		return nil, err
	}
	return p, nil
}

func foldBCC(p map[string]any, recipients []map[string]any, anchor *headerTo) ([]map[string]any, error) {
	if _, ok := p[KeyBCC]; !ok {
		return recipients, nil
	}
	return addListToRecipients(p, recipients, KeyBCC, anchor)
}

func foldCC(p map[string]any, recipients []map[string]any, anchor *headerTo) ([]map[string]any, error) {
	if _, ok := p[KeyCC]; !ok {
		return recipients, nil
	}

	cc, err := entryList(p[KeyCC], KeyCC)
	if err != nil {
		return nil, err
	}

	// The CC header shows each address as given, names included.
	display := make([]string, 0, len(cc))
	for i, entry := range cc {
		s, err := address.DisplayString(entry[KeyAddress])
		if err != nil {
			return nil, fmt.Errorf("cc[%d]: %w", i, err)
		}
		display = append(display, s)
	}

	content, err := objectField(p, KeyContent)
	if err != nil {
		return nil, err
	}
	headers, err := objectField(content, KeyHeaders)
	if err != nil {
		return nil, err
	}
	headers[HeaderCC] = strings.Join(display, ",")

	return addListToRecipients(p, recipients, KeyCC, anchor)
}

// headerTo resolves the header_to value on first use, so payloads without
// cc or bcc never require a parseable first recipient.
type headerTo struct {
	first    []map[string]any
	resolved bool
	s        string
}

func (h *headerTo) value() (string, error) {
	if h.resolved {
		return h.s, nil
	}
	s, err := address.DisplayString(h.first[0][KeyAddress])
	if err != nil {
		return "", fmt.Errorf("recipients[0]: %w", err)
	}
	h.s, h.resolved = s, true
	return s, nil
}

// addListToRecipients appends every entry of p[listName] to recipients with a
// canonical address stamped with header_to and stripped of its name, then
// removes listName from the payload.
func addListToRecipients(p map[string]any, recipients []map[string]any, listName string, anchor *headerTo) ([]map[string]any, error) {
	entries, err := entryList(p[listName], listName)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 && len(recipients) == 0 {
		return nil, &apierrors.PayloadError{Field: listName, Message: "requires at least one recipient"}
	}

	var to string
	if len(entries) > 0 {
		if to, err = anchor.value(); err != nil {
			return nil, err
		}
	}

	for i, entry := range entries {
		addr, err := address.ToCanonical(entry[KeyAddress])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", listName, i, err)
		}
		addr[address.KeyHeaderTo] = to
		delete(addr, address.KeyName)
		entry[KeyAddress] = addr
		recipients = append(recipients, entry)
	}

	delete(p, listName)
	p[KeyRecipients] = toAnySlice(recipients)
	return recipients, nil
}

func expandShorthand(p map[string]any, recipients []map[string]any) error {
	if content, ok := p[KeyContent].(map[string]any); ok {
		if from, ok := content[KeyFrom]; ok {
			addr, err := address.ToCanonical(from)
			if err != nil {
				return fmt.Errorf("content.from: %w", err)
			}
			content[KeyFrom] = addr
		}
	}

	for i, entry := range recipients {
		addr, err := address.ToCanonical(entry[KeyAddress])
		if err != nil {
			return fmt.Errorf("recipients[%d]: %w", i, err)
		}
		entry[KeyAddress] = addr
	}
	p[KeyRecipients] = toAnySlice(recipients)
	return nil
}

// entryList interprets v as a list of objects. Clone has already converted
// typed slices to []any.
func entryList(v any, field string) ([]map[string]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, &apierrors.PayloadError{Field: field, Message: fmt.Sprintf("expected a list, got %T", v)}
	}
	entries := make([]map[string]any, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, &apierrors.PayloadError{Field: fmt.Sprintf("%s[%d]", field, i), Message: fmt.Sprintf("expected an object, got %T", item)}
		}
		if _, ok := entry[KeyAddress]; !ok {
			return nil, &apierrors.PayloadError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "missing address"}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// objectField returns m[key] as an object, creating it when absent.
func objectField(m map[string]any, key string) (map[string]any, error) {
	switch v := m[key].(type) {
	case nil:
		obj := map[string]any{}
		m[key] = obj
		return obj, nil
	case map[string]any:
		return v, nil
	default:
		return nil, &apierrors.PayloadError{Field: key, Message: fmt.Sprintf("expected an object, got %T", v)}
	}
}

func toAnySlice(entries []map[string]any) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}
