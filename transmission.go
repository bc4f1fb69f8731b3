package sparkpost

import (
	"context"

	"github.com/sparkpost/client-go/internal/payload"
)

// Transmissions is the transmissions endpoint. Posting a transmission with
// a literal recipient list first folds cc and bcc into the recipients and
// expands shorthand addresses.
type Transmissions struct {
	*Resource
}

// Post formats p and sends it. Transmissions addressed to a stored
// recipient list ({"list_id": ...}) are sent unchanged.
func (t *Transmissions) Post(ctx context.Context, p Payload, headers Headers) (*Promise, error) {
	formatted, err := t.FormatPayload(p)
	if err != nil {
		return nil, err
	}
	return t.Resource.Post(ctx, formatted, headers)
}

// FormatPayload returns the payload Post would send, without sending it.
// The input is never modified.
//
// Shorthand addresses ("Name <email>" or a bare email) become
// {"name", "email"} objects. Each cc and bcc entry is appended to the
// recipients with "header_to" set to the first original recipient and its
// name removed; cc addresses are also listed in the CC header.
func (t *Transmissions) FormatPayload(p Payload) (Payload, error) {
	return FormatTransmission(p)
}

// FormatTransmission is FormatPayload without a client.
func FormatTransmission(p Payload) (Payload, error) {
	return payload.Format(p)
}
