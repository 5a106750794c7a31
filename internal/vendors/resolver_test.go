package vendors

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeRegistry struct {
	mu      sync.Mutex
	byUser  map[uuid.UUID][]Record
	aliases map[uuid.UUID][]string
	created int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		byUser:  make(map[uuid.UUID][]Record),
		aliases: make(map[uuid.UUID][]string),
	}
}

func (f *fakeRegistry) ListByUser(_ context.Context, userID uuid.UUID) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Record, len(f.byUser[userID]))
	copy(out, f.byUser[userID])
	for i := range out {
		out[i].Aliases = append(out[i].Aliases, f.aliases[out[i].ID]...)
	}
	return out, nil
}

func (f *fakeRegistry) Create(_ context.Context, userID uuid.UUID, v NewVendor) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := Record{
		ID:             uuid.New(),
		Name:           v.Name,
		NormalizedName: NormalizeName(v.Name),
	}
	f.byUser[userID] = append(f.byUser[userID], rec)
	f.created++
	return rec, nil
}

func (f *fakeRegistry) AppendAlias(_ context.Context, vendorID uuid.UUID, alias string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aliases[vendorID] = append(f.aliases[vendorID], alias)
	return nil
}

func newResolver(reg Registry) *Resolver {
	return NewResolver(reg, NewUserLocks(), Config{
		MatchThreshold:  0.85,
		ReviewThreshold: 0.60,
	}, slog.Default())
}

// -------- normalization --------

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acme corp"},
		{"ACME CORP.", "acme corp"},
		{"  Acme,   Corp!  ", "acme corp"},
		{"Garcia & Associates Law Firm", "garcia associates law firm"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

func TestSimilarity_SuffixAndPunctuationVariants(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Acme Corp", "ACME CORP."))
	assert.Equal(t, 1.0, Similarity("Acme Corporation", "Acme Corp"))
	assert.Equal(t, 1.0, Similarity("Microsoft Corporation", "Microsoft"))
	assert.Less(t, Similarity("Acme Corp", "Globex Industries"), 0.5)
	assert.Equal(t, 0.0, Similarity("", "Acme"))
}

// -------- resolution policy --------

func TestResolve_CaseVariantMatchesExisting(t *testing.T) {
	reg := newFakeRegistry()
	userID := uuid.New()
	r := newResolver(reg)

	first, err := r.Resolve(context.Background(), userID, Candidate{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, first.Outcome)

	second, err := r.Resolve(context.Background(), userID, Candidate{Name: "ACME CORP."})
	require.NoError(t, err)
	assert.Equal(t, OutcomeMatched, second.Outcome)
	assert.Equal(t, first.Vendor.ID, second.Vendor.ID)
	assert.Equal(t, 1, reg.created, "case variant must not create a second vendor")
}

func TestResolve_MatchAppendsAliasOnce(t *testing.T) {
	reg := newFakeRegistry()
	userID := uuid.New()
	r := newResolver(reg)

	created, err := r.Resolve(context.Background(), userID, Candidate{Name: "Acme Corporation"})
	require.NoError(t, err)

	res, err := r.Resolve(context.Background(), userID, Candidate{Name: "ACME CORP."})
	require.NoError(t, err)
	assert.Equal(t, OutcomeMatched, res.Outcome)
	require.Len(t, reg.aliases[created.Vendor.ID], 1)
	assert.Equal(t, "ACME CORP.", reg.aliases[created.Vendor.ID][0])

	// Same raw name again: alias already recorded, no duplicate append.
	_, err = r.Resolve(context.Background(), userID, Candidate{Name: "ACME CORP."})
	require.NoError(t, err)
	assert.Len(t, reg.aliases[created.Vendor.ID], 1)
}

func TestResolve_AliasHelpsLaterMatches(t *testing.T) {
	reg := newFakeRegistry()
	userID := uuid.New()
	r := newResolver(reg)

	created, err := r.Resolve(context.Background(), userID, Candidate{Name: "International Widget Makers"})
	require.NoError(t, err)
	require.NoError(t, reg.AppendAlias(context.Background(), created.Vendor.ID, "IWM Holdings"))

	res, err := r.Resolve(context.Background(), userID, Candidate{Name: "IWM Holdings Ltd"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, created.Vendor.ID, res.Vendor.ID)
}

func TestResolve_MiddleBandNeedsReview(t *testing.T) {
	reg := newFakeRegistry()
	userID := uuid.New()
	r := newResolver(reg)

	_, err := r.Resolve(context.Background(), userID, Candidate{Name: "Northwind Trading Company"})
	require.NoError(t, err)

	// Shares tokens but is not close enough to auto-link.
	res, err := r.Resolve(context.Background(), userID, Candidate{Name: "Northwind Trading Group"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeReview, res.Outcome)
	assert.Equal(t, 1, reg.created, "review outcome must not create a vendor")
	assert.GreaterOrEqual(t, res.Confidence, 0.60)
	assert.Less(t, res.Confidence, 0.85)
}

func TestResolve_LowScoreCreatesNewVendor(t *testing.T) {
	reg := newFakeRegistry()
	userID := uuid.New()
	r := newResolver(reg)

	_, err := r.Resolve(context.Background(), userID, Candidate{Name: "Acme Corp"})
	require.NoError(t, err)

	res, err := r.Resolve(context.Background(), userID, Candidate{Name: "Globex Industries"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, 2, reg.created)
}

func TestResolve_ScopedPerUser(t *testing.T) {
	reg := newFakeRegistry()
	r := newResolver(reg)

	_, err := r.Resolve(context.Background(), uuid.New(), Candidate{Name: "Acme Corp"})
	require.NoError(t, err)
	res, err := r.Resolve(context.Background(), uuid.New(), Candidate{Name: "Acme Corp"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCreated, res.Outcome, "another user's registry must not match")
	assert.Equal(t, 2, reg.created)
}

func TestResolve_EmptyNameFails(t *testing.T) {
	r := newResolver(newFakeRegistry())
	_, err := r.Resolve(context.Background(), uuid.New(), Candidate{Name: "   "})
	require.Error(t, err)
}

// Idempotence under concurrency: N racing resolutions of the same
// normalized name for one user end with exactly one vendor record.
func TestResolve_ConcurrentSameNameCreatesOneVendor(t *testing.T) {
	reg := newFakeRegistry()
	userID := uuid.New()
	r := newResolver(reg)

	var wg sync.WaitGroup
	names := []string{"Acme Corp", "ACME CORP.", "acme corp", "Acme Corporation"}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := r.Resolve(context.Background(), userID, Candidate{Name: name})
			assert.NoError(t, err)
		}(names[i%len(names)])
	}
	wg.Wait()

	assert.Equal(t, 1, reg.created, "per-user locking must prevent duplicate vendors")
}

func TestPickBest_TieBreakByFrequencyThenID(t *testing.T) {
	a := Record{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000"), Name: "Acme Corp", InvoiceCount: 1}
	b := Record{ID: uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000"), Name: "Acme Corp", InvoiceCount: 5}

	best, score := pickBest([]Record{a, b}, "Acme Corp")
	require.NotNil(t, best)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, b.ID, best.ID, "higher invoice count wins the tie")

	b.InvoiceCount = 1
	best, _ = pickBest([]Record{b, a}, "Acme Corp")
	assert.Equal(t, a.ID, best.ID, "equal frequency falls back to lexicographic ID")
	assert.True(t, strings.Compare(a.ID.String(), b.ID.String()) < 0)
}
