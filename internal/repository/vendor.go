package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/gen/ent"
	entinvoice "github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/vendor"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/utils"
	"github.com/paperpilot/invoicer/internal/vendors"
)

// VendorRepository persists vendors and doubles as the resolver's registry.
type VendorRepository interface {
	vendors.Registry
	Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{client: client, logger: logger}
}

func (r *vendorRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	row, err := r.client.Vendor.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("vendor %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToVendor(row), nil
}

func (r *vendorRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error) {
	rows, err := r.client.Vendor.Query().
		Where(vendor.UserIDEQ(userID)).
		Order(vendor.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := r.invoiceCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Vendor, len(rows))
	for i, row := range rows {
		v := utils.ToVendor(row)
		v.InvoiceCount = counts[row.ID]
		out[i] = v
	}
	return out, nil
}

func (r *vendorRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]vendors.Record, error) {
	rows, err := r.ListForUser(ctx, userID)
	if err != nil {
		r.logger.Error("vendor.list.failed", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]vendors.Record, len(rows))
	for i, v := range rows {
		out[i] = vendors.Record{
			ID:             v.ID,
			Name:           v.Name,
			NormalizedName: v.NormalizedName,
			Aliases:        v.Aliases,
			InvoiceCount:   v.InvoiceCount,
		}
	}
	return out, nil
}

func (r *vendorRepository) Create(ctx context.Context, userID uuid.UUID, v vendors.NewVendor) (vendors.Record, error) {
	c := r.client.Vendor.Create().
		SetUserID(userID).
		SetName(v.Name).
		SetNormalizedName(vendors.NormalizeName(v.Name)).
		SetAiCreated(true).
		SetConfidenceScore(v.Confidence)
	if v.Address != "" {
		c = c.SetAddress(v.Address)
	}
	if v.Email != "" {
		c = c.SetEmail(v.Email)
	}
	if v.Phone != "" {
		c = c.SetPhone(v.Phone)
	}
	row, err := c.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// concurrent create of the same normalized name: return the winner
			existing, qerr := r.client.Vendor.Query().
				Where(
					vendor.UserIDEQ(userID),
					vendor.NormalizedNameEQ(vendors.NormalizeName(v.Name)),
				).
				Only(ctx)
			if qerr == nil {
				return recordFromRow(existing), nil
			}
		}
		r.logger.Error("vendor.create.failed", "user_id", userID, "name", v.Name, "error", err)
		return vendors.Record{}, err
	}
	r.logger.Info("vendor.create.ok", "vendor_id", row.ID, "user_id", userID, "name", v.Name)
	return recordFromRow(row), nil
}

func (r *vendorRepository) AppendAlias(ctx context.Context, vendorID uuid.UUID, alias string) error {
	row, err := r.client.Vendor.Get(ctx, vendorID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("vendor %s: %w", vendorID, common.ErrNotFound)
		}
		return err
	}
	for _, a := range row.Aliases {
		if a == alias {
			return nil
		}
	}
	_, err = row.Update().SetAliases(append(row.Aliases, alias)).Save(ctx)
	return err
}

func (r *vendorRepository) invoiceCounts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	var grouped []struct {
		VendorID uuid.UUID `json:"vendor_id"`
		Count    int       `json:"count"`
	}
	err := r.client.Invoice.Query().
		Where(entinvoice.UserIDEQ(userID), entinvoice.VendorIDNotNil()).
		GroupBy(entinvoice.FieldVendorID).
		Aggregate(ent.Count()).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int, len(grouped))
	for _, g := range grouped {
		out[g.VendorID] = g.Count
	}
	return out, nil
}

func recordFromRow(row *ent.Vendor) vendors.Record {
	return vendors.Record{
		ID:             row.ID,
		Name:           row.Name,
		NormalizedName: row.NormalizedName,
		Aliases:        row.Aliases,
	}
}
