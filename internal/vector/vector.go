package vector

import (
	"errors"
	"math"
	"strings"
)

// ErrDimensionMismatch is returned when two vectors cannot be compared.
var ErrDimensionMismatch = errors.New("embedding vectors must have the same dimensions")

// CosineSimilarity computes dot(a,b) / (|a| * |b|). If either vector has zero
// norm the similarity is defined as 0 instead of propagating a division by
// zero.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Field is one labeled section of a document to embed.
type Field struct {
	Label string
	Value string
}

// Combine joins labeled text fields into a single document for embedding.
// Each entry renders as "<label>: <value>", entries are separated by a blank
// line, and fields with empty or whitespace-only values are skipped. Slice
// order is output order.
func Combine(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			continue
		}
		parts = append(parts, f.Label+": "+f.Value)
	}
	return strings.Join(parts, "\n\n")
}
