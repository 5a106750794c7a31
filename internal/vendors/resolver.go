package vendors

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is the resolver's view of a registered vendor.
type Record struct {
	ID             uuid.UUID
	Name           string
	NormalizedName string
	Aliases        []string
	InvoiceCount   int
}

// NewVendor carries the fields stored when no existing vendor matches.
type NewVendor struct {
	Name       string
	Address    string
	Email      string
	Phone      string
	Confidence float32
}

// Registry is the vendor persistence the resolver depends on, scoped per
// user by every method.
type Registry interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Record, error)
	Create(ctx context.Context, userID uuid.UUID, v NewVendor) (Record, error)
	AppendAlias(ctx context.Context, vendorID uuid.UUID, alias string) error
}

// Outcome of a resolution attempt. Ambiguity is an outcome, not an error:
// the resolver never fails hard on fuzzy input.
type Outcome string

const (
	OutcomeMatched Outcome = "matched" // auto-linked, alias recorded
	OutcomeReview  Outcome = "review"  // middle band, held for manual confirmation
	OutcomeCreated Outcome = "created" // no candidate cleared the floor
)

// Resolution is the result of matching one extracted vendor name.
type Resolution struct {
	Vendor     Record
	Confidence float64
	Outcome    Outcome
}

// Candidate is the raw vendor data from an extraction.
type Candidate struct {
	Name       string
	Address    string
	Email      string
	Phone      string
	Confidence float32
}

// Config holds the resolver's decision thresholds. These are policy knobs,
// loaded from configuration, never hard-coded at call sites.
type Config struct {
	MatchThreshold  float64 // score >= here auto-links
	ReviewThreshold float64 // score >= here (but < match) needs review
}

type Resolver struct {
	registry Registry
	locks    *UserLocks
	cfg      Config
	logger   *slog.Logger
}

func NewResolver(registry Registry, locks *UserLocks, cfg Config, logger *slog.Logger) *Resolver {
	if locks == nil {
		locks = NewUserLocks()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{registry: registry, locks: locks, cfg: cfg, logger: logger}
}

// Resolve matches cand against the user's vendor registry. The whole
// match-or-create step runs under the user's lock so a second concurrent
// extraction observes whatever this call created.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, cand Candidate) (Resolution, error) {
	name := strings.TrimSpace(cand.Name)
	if name == "" {
		return Resolution{}, fmt.Errorf("vendor name is empty")
	}

	unlock := r.locks.Lock(userID)
	defer unlock()

	start := time.Now()
	existing, err := r.registry.ListByUser(ctx, userID)
	if err != nil {
		return Resolution{}, fmt.Errorf("list vendors: %w", err)
	}

	best, score := pickBest(existing, name)

	switch {
	case best != nil && score >= r.cfg.MatchThreshold:
		if !hasAlias(*best, name) && !strings.EqualFold(best.Name, name) {
			if err := r.registry.AppendAlias(ctx, best.ID, name); err != nil {
				return Resolution{}, fmt.Errorf("append alias: %w", err)
			}
			best.Aliases = append(best.Aliases, name)
		}
		r.logger.Info("vendor.resolve.matched",
			"user_id", userID, "vendor_id", best.ID, "vendor", best.Name,
			"raw_name", name, "score", score,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Resolution{Vendor: *best, Confidence: score, Outcome: OutcomeMatched}, nil

	case best != nil && score >= r.cfg.ReviewThreshold:
		r.logger.Info("vendor.resolve.needs_review",
			"user_id", userID, "candidate_vendor_id", best.ID, "raw_name", name, "score", score)
		return Resolution{Vendor: *best, Confidence: score, Outcome: OutcomeReview}, nil

	default:
		created, err := r.registry.Create(ctx, userID, NewVendor{
			Name:       name,
			Address:    cand.Address,
			Email:      cand.Email,
			Phone:      cand.Phone,
			Confidence: cand.Confidence,
		})
		if err != nil {
			return Resolution{}, fmt.Errorf("create vendor: %w", err)
		}
		r.logger.Info("vendor.resolve.created",
			"user_id", userID, "vendor_id", created.ID, "vendor", created.Name,
			"best_score", score,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Resolution{Vendor: created, Confidence: score, Outcome: OutcomeCreated}, nil
	}
}

// pickBest returns the highest-scoring vendor. Ties break by invoice count
// (frequency), then lexicographic vendor ID, for full determinism.
func pickBest(existing []Record, name string) (*Record, float64) {
	var best *Record
	bestScore := 0.0
	for i := range existing {
		v := &existing[i]
		score := Similarity(name, v.Name)
		for _, alias := range v.Aliases {
			if s := Similarity(name, alias); s > score {
				score = s
			}
		}
		if best == nil || score > bestScore ||
			(score == bestScore && betterTieBreak(v, best)) {
			best, bestScore = v, score
		}
	}
	return best, bestScore
}

func betterTieBreak(a, b *Record) bool {
	if a.InvoiceCount != b.InvoiceCount {
		return a.InvoiceCount > b.InvoiceCount
	}
	return a.ID.String() < b.ID.String()
}

func hasAlias(v Record, name string) bool {
	for _, alias := range v.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}
