package document

import (
	"strings"

	"github.com/google/uuid"
)

const keyLen = 5

// newKey returns a short random block key for which exists reports false.
func newKey(exists func(string) bool) string {
	for {
		k := strings.ReplaceAll(uuid.NewString(), "-", "")[:keyLen]
		if exists == nil || !exists(k) {
			return k
		}
	}
}
