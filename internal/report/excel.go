package report

import (
	"fmt"
	"io"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	ReservationsSheet = "Reservations"
	ContentType       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var reservationHeader = []interface{}{
	"Reservation ID", "Email", "First Name", "Last Name",
	"Room", "Type", "Nightly Price", "Check-In", "Check-Out", "Nights", "Total",
}

// WriteReservations renders reservations as a single-sheet workbook.
func WriteReservations(w io.Writer, reservations []domain.Reservation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReservationsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ReservationsSheet, "A1", &reservationHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range reservations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.ID, r.Customer.Email, r.Customer.FirstName, r.Customer.LastName,
			r.Room.Number, string(r.Room.Type), cents(r.Room.PriceCents),
			domain.FormatDate(r.CheckIn), domain.FormatDate(r.CheckOut), r.Nights(), cents(r.TotalCents()),
		}
		if err := f.SetSheetRow(ReservationsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(ReservationsSheet, "A", "A", 38); err != nil {
		return err
	}
	if err := f.SetColWidth(ReservationsSheet, "B", "B", 28); err != nil {
		return err
	}
	return f.Write(w)
}

func cents(v int64) float64 {
	return float64(v) / 100
}
