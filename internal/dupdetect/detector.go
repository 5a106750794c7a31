package dupdetect

import (
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
)

// Verdict classifies a candidate against the user's prior invoices.
type Verdict string

const (
	VerdictUnique   Verdict = "unique"
	VerdictProbable Verdict = "probable_duplicate" // needs user confirmation
	VerdictExact    Verdict = "exact_duplicate"    // auto-transitions to duplicate
)

// Result is the detector's verdict. OriginalID always references a
// non-duplicate original, resolved transitively, so duplicate_of edges
// never form chains or cycles.
type Result struct {
	Verdict    Verdict
	OriginalID uuid.UUID
	Score      float64
}

// Prior is the detector's view of one previously imported invoice.
type Prior struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	InvoiceNumber string
	Total         float64
	IssueDate     time.Time
	Status        constants.InvoiceStatus
	DuplicateOf   uuid.UUID // zero unless Status is duplicate
}

// Config holds the fuzzy scoring policy.
type Config struct {
	Threshold       float64 // fuzzy score >= here is a probable duplicate
	AmountTolerance float64 // currency units treated as "the same amount"
	DateWindowDays  int     // proximity window for issue dates
}

// Fuzzy scoring weights. Vendor identity gates the comparison and
// contributes its weight outright; amount and date decay with distance.
const (
	vendorWeight = 0.40
	amountWeight = 0.35
	dateWeight   = 0.25

	// amounts further apart than this fraction of the larger total score zero
	amountDecaySpan = 0.05
)

type Detector struct {
	cfg    Config
	logger *slog.Logger
}

func NewDetector(cfg Config, logger *slog.Logger) *Detector {
	if cfg.Threshold <= 0 {
		cfg.Threshold = 0.80
	}
	if cfg.AmountTolerance <= 0 {
		cfg.AmountTolerance = 0.01
	}
	if cfg.DateWindowDays <= 0 {
		cfg.DateWindowDays = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{cfg: cfg, logger: logger}
}

// Detect compares key against the user's priors. Exact fingerprint matches
// win; otherwise the best fuzzy score above the threshold yields a
// probable duplicate. The detector is pure over its inputs.
func (d *Detector) Detect(key Key, priors []Prior) Result {
	if fp, ok := Fingerprint(key); ok {
		for _, p := range priors {
			pfp, pok := Fingerprint(Key{
				UserID:        key.UserID,
				VendorID:      p.VendorID,
				InvoiceNumber: p.InvoiceNumber,
				Total:         p.Total,
				IssueDate:     p.IssueDate,
			})
			if pok && pfp == fp {
				orig := resolveOriginal(p, priors)
				d.logger.Info("dupdetect.exact",
					"user_id", key.UserID, "original_id", orig)
				return Result{Verdict: VerdictExact, OriginalID: orig, Score: 1.0}
			}
		}
	}

	best := Result{Verdict: VerdictUnique}
	for _, p := range priors {
		if p.VendorID != key.VendorID {
			continue
		}
		score := vendorWeight + d.amountScore(key.Total, p.Total) + d.dateScore(key.IssueDate, p.IssueDate)
		if score > best.Score {
			best = Result{Verdict: VerdictUnique, OriginalID: resolveOriginal(p, priors), Score: score}
		}
	}
	if best.Score >= d.cfg.Threshold {
		best.Verdict = VerdictProbable
		d.logger.Info("dupdetect.probable",
			"user_id", key.UserID, "original_id", best.OriginalID, "score", best.Score)
		return best
	}
	return Result{Verdict: VerdictUnique, Score: best.Score}
}

func (d *Detector) amountScore(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff <= d.cfg.AmountTolerance {
		return amountWeight
	}
	span := amountDecaySpan * math.Max(math.Max(a, b), 1)
	if diff >= span {
		return 0
	}
	return amountWeight * (1 - diff/span)
}

func (d *Detector) dateScore(a, b time.Time) float64 {
	days := math.Abs(a.Sub(b).Hours() / 24)
	window := float64(d.cfg.DateWindowDays)
	if days > window {
		return 0
	}
	return dateWeight * (1 - days/window)
}

// resolveOriginal follows duplicate_of edges inside priors until it lands
// on a non-duplicate invoice, so new duplicates always point at the root
// original. A missing link terminates the walk at the last known node.
func resolveOriginal(p Prior, priors []Prior) uuid.UUID {
	byID := make(map[uuid.UUID]Prior, len(priors))
	for _, q := range priors {
		byID[q.ID] = q
	}
	cur := p
	seen := map[uuid.UUID]struct{}{}
	for cur.Status == constants.StatusDuplicate && cur.DuplicateOf != uuid.Nil {
		if _, cycle := seen[cur.ID]; cycle {
			break
		}
		seen[cur.ID] = struct{}{}
		next, ok := byID[cur.DuplicateOf]
		if !ok {
			return cur.DuplicateOf
		}
		cur = next
	}
	return cur.ID
}
