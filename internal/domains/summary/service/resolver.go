package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hotelboard/config"
	"hotelboard/infras/otel"
	folioModel "hotelboard/internal/domains/folio/model"
	folioRepo "hotelboard/internal/domains/folio/repository"
	maintenanceRepo "hotelboard/internal/domains/maintenance/repository"
	maintenanceModel "hotelboard/internal/domains/maintenance/model"
	reservationModel "hotelboard/internal/domains/reservation/model"
	reservationRepo "hotelboard/internal/domains/reservation/repository"
	roomModel "hotelboard/internal/domains/room/model"
	"hotelboard/internal/domains/summary/model"
	"hotelboard/shared/constant"
	"hotelboard/shared/failure"
	"hotelboard/shared/timezone"

	"github.com/rs/zerolog/log"
)

const defaultCutoverTime = "15:00:00"

var reservationLabels = map[string]string{
	reservationModel.StateDraft:   model.StateDraft,
	reservationModel.StateConfirm: model.StateReserved,
	reservationModel.StateDone:    model.StateOccupied,
}

// CheckResult is the outcome of one status check for a room and date. A zero
// value means the check did not match.
type CheckResult struct {
	State         string
	Tooltip       string
	ReservationID int64
	FolioID       int64
}

func (c CheckResult) Matched() bool {
	return c.State != constant.Empty
}

// Merge returns the first matching result in precedence order
// occupied, blocked, reserved, or Free when none matched.
func Merge(occupied, blocked, reserved CheckResult) CheckResult {
	for _, result := range []CheckResult{occupied, blocked, reserved} {
		if result.Matched() {
			return result
		}
	}

	return CheckResult{State: model.StateFree}
}

// DaySnapshot holds every record relevant to one board date. Rooms are
// resolved against it in memory.
type DaySnapshot struct {
	Date         string
	Timezone     string
	Start        time.Time
	End          time.Time
	Reservations []reservationModel.ReservationLine
	FolioLines   []folioModel.FolioLine
	Blocks       []maintenanceModel.Block
}

type Resolver struct {
	reservations reservationRepo.Reservation
	folios       folioRepo.Folio
	maintenance  maintenanceRepo.Maintenance
	converter    timezone.Converter
	cutover      string
	otel         otel.Otel
}

func NewResolver(
	reservations reservationRepo.Reservation,
	folios folioRepo.Folio,
	maintenance maintenanceRepo.Maintenance,
	converter timezone.Converter,
	cfg *config.Config,
	otel otel.Otel,
) *Resolver {
	cutover := cfg.Summary.CutoverTime
	if cutover == constant.Empty {
		cutover = defaultCutoverTime
	}

	return &Resolver{
		reservations: reservations,
		folios:       folios,
		maintenance:  maintenance,
		converter:    converter,
		cutover:      cutover,
		otel:         otel,
	}
}

// Window returns the UTC bounds checked for a local board date: the date
// itself and the cutover time of the same day.
func (r *Resolver) Window(date, tz string) (start, end time.Time, err error) {
	naive, ok := timezone.ParseDateTime(date)
	if !ok {
		return start, end, failure.BadRequestFromString(fmt.Sprintf("invalid board date %q", date)) // nolint:wrapcheck
	}

	cutover, ok := timezone.ParseDateTime(naive.Format(constant.DayFormat) + " " + r.cutover)
	if !ok {
		return start, end, fmt.Errorf("invalid cutover time %q: %w", r.cutover, timezone.ErrInvalidDateTime)
	}

	start, err = r.converter.Localize(naive, tz)
	if err != nil {
		return start, end, failure.BadRequest(err) // nolint:wrapcheck
	}

	end, err = r.converter.Localize(cutover, tz)
	if err != nil {
		return start, end, failure.BadRequest(err) // nolint:wrapcheck
	}

	return start, end, nil
}

// LoadDay runs the reservation, folio and maintenance queries for one date.
func (r *Resolver) LoadDay(ctx context.Context, date, tz string) (day DaySnapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadDay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := r.Window(date, tz)
	if err != nil {
		return day, err
	}

	day = DaySnapshot{
		Date:     date,
		Timezone: tz,
		Start:    start,
		End:      end,
	}

	day.Reservations, err = r.reservations.FindSpanning(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load reservations")

		return day, fmt.Errorf("failed to load reservations: %w", err)
	}

	day.FolioLines, err = r.folios.FindSpanning(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load folio lines")

		return day, fmt.Errorf("failed to load folio lines: %w", err)
	}

	// Blocks are compared against the raw board date.
	naive, _ := timezone.ParseDateTime(date)

	day.Blocks, err = r.maintenance.FindCovering(ctx, naive)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load maintenance blocks")

		return day, fmt.Errorf("failed to load maintenance blocks: %w", err)
	}

	return day, nil
}

// Resolve renders the cell of room on the snapshot date.
func (r *Resolver) Resolve(day DaySnapshot, room roomModel.Room) model.Cell {
	result := Merge(
		r.CheckOccupied(day, room),
		CheckBlocked(day, room),
		r.CheckReservation(day, room),
	)

	return model.Cell{
		State:       result.State,
		Date:        day.Date,
		RoomID:      room.ID,
		TooltipInfo: result.Tooltip,
		Reservation: result.ReservationID,
		FolioID:     result.FolioID,
	}
}

// CheckReservation matches the first open reservation line booked on the room.
func (r *Resolver) CheckReservation(day DaySnapshot, room roomModel.Room) CheckResult {
	for _, line := range day.Reservations {
		if line.LineName != room.Name || slices.Contains(reservationModel.ClosedStates, line.State) {
			continue
		}

		label, ok := reservationLabels[line.State]
		if !ok {
			continue
		}

		return CheckResult{
			State:         label,
			ReservationID: line.ID,
			Tooltip: fmt.Sprintf("%s\nCheckout: %s\nReserva: %s",
				line.PartnerName, r.localCheckout(line.Checkout, day.Timezone), line.ReservationNo),
		}
	}

	return CheckResult{}
}

// CheckOccupied matches the first folio line of an open folio selling the room.
func (r *Resolver) CheckOccupied(day DaySnapshot, room roomModel.Room) CheckResult {
	for _, line := range day.FolioLines {
		if line.ProductName != room.Name || slices.Contains(folioModel.ClosedStates, line.FolioState) {
			continue
		}

		checkout := constant.Empty
		if line.FolioCheckout.Valid {
			checkout = r.localCheckout(line.FolioCheckout.Time, day.Timezone)
		}

		return CheckResult{
			State:   model.StateOccupied,
			FolioID: line.FolioID,
			Tooltip: fmt.Sprintf("%s\nCheckout: %s\nFolio: %s", line.PartnerName, checkout, line.FolioName),
		}
	}

	return CheckResult{}
}

// CheckBlocked matches the first maintenance block on the room.
func CheckBlocked(day DaySnapshot, room roomModel.Room) CheckResult {
	for _, block := range day.Blocks {
		if block.RoomName != room.Name {
			continue
		}

		return CheckResult{
			State:   model.StateBlocked,
			Tooltip: block.Description,
		}
	}

	return CheckResult{}
}

func (r *Resolver) localCheckout(checkout time.Time, tz string) string {
	local, err := r.converter.Shift(checkout, tz)
	if err != nil {
		log.Warn().Err(err).Str("tz", tz).Msg("failed to shift checkout to session zone")

		return constant.Empty
	}

	return local.Format(model.TooltipCheckoutLayout)
}
