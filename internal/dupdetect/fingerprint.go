package dupdetect

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key is the composite identity used for exact duplicate detection.
type Key struct {
	UserID        uuid.UUID
	VendorID      uuid.UUID
	InvoiceNumber string
	Total         float64
	IssueDate     time.Time
}

// Fingerprint computes the stable content fingerprint for k. Identical
// inputs always yield the same value regardless of call order. An invoice
// with a blank invoice number has no exact fingerprint (ok is false) so
// blank numbers can never chain false positives through the exact path.
func Fingerprint(k Key) (string, bool) {
	num := NormalizeInvoiceNumber(k.InvoiceNumber)
	if num == "" {
		return "", false
	}
	payload := fmt.Sprintf("%s|%s|%s|%.2f|%s",
		k.UserID, k.VendorID, num, k.Total, k.IssueDate.Format("2006-01-02"))
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:]), true
}

// NormalizeInvoiceNumber lowercases and strips whitespace so formatting
// noise does not defeat exact matching.
func NormalizeInvoiceNumber(num string) string {
	return strings.ToLower(strings.Join(strings.Fields(num), ""))
}
