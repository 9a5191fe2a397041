// Package docnumber issues human-readable document numbers like TDS008-2024-007.
package docnumber

import (
	"context"
	"fmt"
)

// Sequencer hands out the next per-prefix, per-year counter value, starting at 1.
type Sequencer interface {
	Next(ctx context.Context, prefix string, year int) (int, error)
}

// Format renders prefix-year-sequence with the sequence zero padded to width.
func Format(prefix string, year, seq, width int) string {
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, width, seq)
}

// Generate draws the next value from seq and formats it.
func Generate(ctx context.Context, seq Sequencer, prefix string, year, width int) (string, error) {
	n, err := seq.Next(ctx, prefix, year)
	if err != nil {
		return "", fmt.Errorf("next %s sequence: %w", prefix, err)
	}
	return Format(prefix, year, n, width), nil
}
