package model

import "strings"

// TranscriptSegment is one caption line in temporal order. Offset and
// duration are seconds; malformed upstream attributes yield NaN, which is
// preserved as-is since only Text is consumed downstream.
type TranscriptSegment struct {
	Text            string
	OffsetSeconds   float64
	DurationSeconds float64
	Lang            string
}

// JoinSegments concatenates segment texts in order, separated by single
// spaces. This is the transcript sent downstream.
func JoinSegments(segments []TranscriptSegment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}
