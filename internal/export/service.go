package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/paperpilot/invoicer/internal/repository"
)

// Service is a small façade over the repositories that produces XLSX bytes
// for exports.
type Service struct {
	invoices repository.InvoiceRepository
	vendors  repository.VendorRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, vendors repository.VendorRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, vendors: vendors, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook for the user's invoices in
// the given date window. If only from is provided the window runs to
// today; if neither is provided everything is exported.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := dateOnly(*from)
		fromDate = &f
	}
	if to != nil {
		t := dateOnly(*to)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		t := dateOnly(time.Now().UTC())
		toDate = &t
	}

	invs, err := s.invoices.List(ctx, &repository.ListInvoicesFilter{
		UserID:   userID,
		FromDate: fromDate,
		ToDate:   toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	vendorNames := map[uuid.UUID]string{}
	if rows, err := s.vendors.ListForUser(ctx, userID); err == nil {
		for _, v := range rows {
			vendorNames[v.ID] = v.Name
		}
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Invoice Number",
		"Vendor",
		"Invoice Date",
		"Due Date",
		"Status",
		"Subtotal",
		"Tax",
		"Total",
		"Currency",
		"Overdue",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	now := time.Now().UTC()
	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		vendor := ""
		if inv.VendorID != nil {
			vendor = vendorNames[*inv.VendorID]
		}
		number := ""
		if inv.InvoiceNumber != nil {
			number = *inv.InvoiceNumber
		}
		notes := ""
		if inv.Notes != nil {
			notes = *inv.Notes
		}

		write(1, number)
		write(2, vendor)
		if inv.InvoiceDate != nil {
			write(3, inv.InvoiceDate.Format("2006-01-02"))
		}
		if inv.DueDate != nil {
			write(4, inv.DueDate.Format("2006-01-02"))
		}
		write(5, string(inv.Status))
		if inv.Subtotal != nil {
			write(6, fmt.Sprintf("%.2f", *inv.Subtotal))
		}
		if inv.TaxAmount != nil {
			write(7, fmt.Sprintf("%.2f", *inv.TaxAmount))
		}
		write(8, fmt.Sprintf("%.2f", inv.TotalAmount))
		write(9, inv.Currency)
		if inv.IsOverdue(now) {
			write(10, "yes")
		}
		write(11, truncate(notes, 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 26)
	_ = f.SetColWidth(sheet, "C", "D", 12)
	_ = f.SetColWidth(sheet, "H", "H", 12)
	_ = f.SetColWidth(sheet, "K", "K", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"user_id", userID,
		"rows", len(invs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
