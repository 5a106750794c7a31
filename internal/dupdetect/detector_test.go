package dupdetect

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/constants"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newDetector() *Detector {
	return NewDetector(Config{
		Threshold:       0.80,
		AmountTolerance: 0.01,
		DateWindowDays:  5,
	}, slog.Default())
}

func TestFingerprint_StableAndSymmetric(t *testing.T) {
	k := Key{
		UserID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		VendorID:      uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		InvoiceNumber: "INV-100",
		Total:         100.00,
		IssueDate:     date("2024-01-05"),
	}
	a, ok := Fingerprint(k)
	require.True(t, ok)
	b, ok := Fingerprint(k)
	require.True(t, ok)
	assert.Equal(t, a, b, "identical inputs always yield the same fingerprint")

	// formatting noise in the number does not change identity
	k2 := k
	k2.InvoiceNumber = " inv-100 "
	c, ok := Fingerprint(k2)
	require.True(t, ok)
	assert.Equal(t, a, c)

	// any component change does
	k3 := k
	k3.Total = 100.01
	d, ok := Fingerprint(k3)
	require.True(t, ok)
	assert.NotEqual(t, a, d)
}

func TestFingerprint_BlankNumberHasNoExactIdentity(t *testing.T) {
	_, ok := Fingerprint(Key{
		UserID:    uuid.New(),
		VendorID:  uuid.New(),
		Total:     50,
		IssueDate: date("2024-01-05"),
	})
	assert.False(t, ok)
}

func TestDetect_ExactDuplicate(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()
	original := Prior{
		ID:            uuid.New(),
		VendorID:      vendorID,
		InvoiceNumber: "INV-100",
		Total:         100.00,
		IssueDate:     date("2024-01-05"),
		Status:        constants.StatusProcessed,
	}

	res := newDetector().Detect(Key{
		UserID:        userID,
		VendorID:      vendorID,
		InvoiceNumber: "INV-100",
		Total:         100.00,
		IssueDate:     date("2024-01-05"),
	}, []Prior{original})

	assert.Equal(t, VerdictExact, res.Verdict)
	assert.Equal(t, original.ID, res.OriginalID)
	assert.Equal(t, 1.0, res.Score)
}

func TestDetect_ExactResolvesTransitively(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()
	root := Prior{
		ID: uuid.New(), VendorID: vendorID, InvoiceNumber: "INV-100",
		Total: 100, IssueDate: date("2024-01-05"), Status: constants.StatusProcessed,
	}
	dup := Prior{
		ID: uuid.New(), VendorID: vendorID, InvoiceNumber: "INV-100",
		Total: 100, IssueDate: date("2024-01-05"),
		Status: constants.StatusDuplicate, DuplicateOf: root.ID,
	}

	res := newDetector().Detect(Key{
		UserID: userID, VendorID: vendorID, InvoiceNumber: "INV-100",
		Total: 100, IssueDate: date("2024-01-05"),
	}, []Prior{dup, root})

	assert.Equal(t, VerdictExact, res.Verdict)
	assert.Equal(t, root.ID, res.OriginalID, "duplicate_of must point at the non-duplicate root")
}

func TestDetect_BlankNumberRoutesThroughFuzzyOnly(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()
	prior := Prior{
		ID: uuid.New(), VendorID: vendorID, InvoiceNumber: "",
		Total: 250.00, IssueDate: date("2024-03-10"), Status: constants.StatusProcessed,
	}

	res := newDetector().Detect(Key{
		UserID: userID, VendorID: vendorID, InvoiceNumber: "",
		Total: 250.00, IssueDate: date("2024-03-10"),
	}, []Prior{prior})

	// same vendor, same amount, same day: strong fuzzy signal, not exact
	assert.Equal(t, VerdictProbable, res.Verdict)
	assert.Equal(t, prior.ID, res.OriginalID)
	assert.InDelta(t, 1.0, res.Score, 1e-9)
}

func TestDetect_FuzzyDecaysWithDistance(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()
	prior := Prior{
		ID: uuid.New(), VendorID: vendorID, InvoiceNumber: "A-1",
		Total: 100.00, IssueDate: date("2024-01-05"), Status: constants.StatusProcessed,
	}
	d := newDetector()

	// close amount and date, different number: probable
	res := d.Detect(Key{
		UserID: userID, VendorID: vendorID, InvoiceNumber: "A-2",
		Total: 100.00, IssueDate: date("2024-01-06"),
	}, []Prior{prior})
	assert.Equal(t, VerdictProbable, res.Verdict)

	// same vendor but amount far outside the window: unique
	res = d.Detect(Key{
		UserID: userID, VendorID: vendorID, InvoiceNumber: "A-3",
		Total: 900.00, IssueDate: date("2024-01-06"),
	}, []Prior{prior})
	assert.Equal(t, VerdictUnique, res.Verdict)

	// different vendor never compares
	res = d.Detect(Key{
		UserID: userID, VendorID: uuid.New(), InvoiceNumber: "A-1",
		Total: 100.00, IssueDate: date("2024-01-05"),
	}, []Prior{prior})
	assert.Equal(t, VerdictUnique, res.Verdict)
	assert.Zero(t, res.Score)
}

func TestDetect_NoPriors(t *testing.T) {
	res := newDetector().Detect(Key{
		UserID: uuid.New(), VendorID: uuid.New(), InvoiceNumber: "INV-1",
		Total: 10, IssueDate: date("2024-01-05"),
	}, nil)
	assert.Equal(t, VerdictUnique, res.Verdict)
}
