package contract

import (
	"strings"

	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// DefaultMinWords is the shortest document worth sending to inference.
const DefaultMinWords = 20

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CheckReadable rejects empty or too-short documents before any inference
// call.  minWords below 1 uses DefaultMinWords.
func CheckReadable(text string, minWords int) error {
	if minWords < 1 {
		minWords = DefaultMinWords
	}
	n := WordCount(text)
	if n == 0 {
		return errors.New(errors.CodeDocumentUnreadable, "document text is empty")
	}
	if n < minWords {
		return errors.Newf(errors.CodeDocumentUnreadable,
			"document has %d words; at least %d are needed for a meaningful audit", n, minWords)
	}
	return nil
}

//Personal.AI order the ending
