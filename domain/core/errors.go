package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Association scoring errors
	ErrInsufficientData = errors.New("insufficient data for association scoring")
	ErrDegenerateTable  = errors.New("degenerate frequency table")

	// Topic quality errors
	ErrEmptyTopicSet     = errors.New("topic set has no words")
	ErrMissingVocabulary = errors.New("topic word missing from corpus vocabulary")

	// Input contract errors
	ErrSampleMismatch = errors.New("samples have mismatched lengths")
	ErrInvalidTable   = errors.New("invalid probability table")
)

// Error constructors with context

func NewInsufficientDataError(n float64) error {
	return fmt.Errorf("%w: total count %.0f, need at least 2", ErrInsufficientData, n)
}

func NewDegenerateTableError(rows, cols int) error {
	return fmt.Errorf("%w: corrected dimensions collapse for %dx%d table", ErrDegenerateTable, rows, cols)
}

func NewMissingVocabularyError(topicIndex int, word string) error {
	return fmt.Errorf("%w: topic %d word %q", ErrMissingVocabulary, topicIndex, word)
}

func NewSampleMismatchError(lenA, lenB int) error {
	return fmt.Errorf("%w: %d vs %d", ErrSampleMismatch, lenA, lenB)
}

// Error classification for callers deciding how to react to a failed unit
// of a batch sweep.

// IsDataError reports whether the error describes a data shape that simply
// cannot be scored. These are expected outcomes on real datasets and are
// safe to record and skip.
func IsDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrDegenerateTable) ||
		errors.Is(err, ErrEmptyTopicSet) ||
		errors.Is(err, ErrMissingVocabulary)
}

// IsContractError reports whether the error describes inputs that violate an
// operation's calling contract, which indicates a bug in the caller rather
// than a property of the data.
func IsContractError(err error) bool {
	return errors.Is(err, ErrSampleMismatch) ||
		errors.Is(err, ErrInvalidTable)
}
