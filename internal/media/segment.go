package media

import (
	"fmt"
	"path/filepath"
)

// Segment is a contiguous byte range of a parent payload, independently
// submittable to the transcription service. Segments are ordered by ascending
// offset; concatenating their data in order reconstructs the parent exactly.
type Segment struct {
	Data     []byte
	MIMEType string
	Name     string
	Index    int
	Offset   int64
}

// Split cuts p into segments of at most maxBytes each. The last segment may
// be shorter. Segment names are cosmetic, derived from the parent filename's
// extension the way the upload form names its chunks.
func Split(p Payload, maxBytes int) []Segment {
	if maxBytes <= 0 || len(p.Data) == 0 {
		return nil
	}

	ext := filepath.Ext(p.Filename)

	segments := make([]Segment, 0, (len(p.Data)+maxBytes-1)/maxBytes)
	for i := 0; i < len(p.Data); i += maxBytes {
		end := i + maxBytes
		if end > len(p.Data) {
			end = len(p.Data)
		}
		segments = append(segments, Segment{
			Data:     p.Data[i:end],
			MIMEType: p.MIMEType,
			Name:     fmt.Sprintf("chunk_%d%s", len(segments), ext),
			Index:    len(segments),
			Offset:   int64(i),
		})
	}

	return segments
}
