package media

import (
	"errors"
	"fmt"
)

// Payload is one uploaded audio recording, held fully in memory for the
// duration of a single pipeline run. It is never mutated after creation.
type Payload struct {
	Data     []byte
	MIMEType string
	Filename string
}

// Size returns the payload length in bytes.
func (p Payload) Size() int64 {
	return int64(len(p.Data))
}

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrPayloadTooLarge   = errors.New("payload exceeds size limit")
)

// allowedTypes is the upload allow-list. Browsers report the same container
// under a couple of different MIME names, so both spellings are accepted.
var allowedTypes = map[string]bool{
	"audio/mp3":  true,
	"audio/mpeg": true,
	"audio/wav":  true,
	"audio/m4a":  true,
	"audio/webm": true,
	"audio/ogg":  true,
}

// Validate checks the declared media type and byte size against the
// allow-list and the hard upload ceiling. It is a pure check and runs before
// any upstream call is made.
func Validate(p Payload, maxBytes int64) error {
	if !allowedTypes[p.MIMEType] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, p.MIMEType)
	}
	if p.Size() > maxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, p.Size(), maxBytes)
	}
	return nil
}
