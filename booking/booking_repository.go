package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectBooking = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       i.id, i.name, i.owner_id,
	       u.id, u.name
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id
`

// InsertBooking saves a new WAITING booking. The item row is locked for the
// duration of the transaction and the approved calendar re-checked under
// that lock, so a create racing a concurrent approval of the same item
// cannot slip past the overlap check.
func (r *Repository) InsertBooking(ctx context.Context, b Booking) (Booking, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	if err := lockItem(ctx, tx, b.Item.ID); err != nil {
		return Booking{}, err
	}

	taken, err := existsApprovedOverlap(ctx, tx, b.Item.ID, b.Start, b.End, uuid.Nil)

	if err != nil {
		return Booking{}, err
	}

	if taken {
		return Booking{}, ErrIntervalTaken
	}

	sql := `
			INSERT INTO bookings(id, item_id, booker_id, start_date, end_date, status)
			VALUES ($1, $2, $3, $4, $5, $6);
		`

	_, err = tx.Exec(ctx, sql, b.ID, b.Item.ID, b.Booker.ID, b.Start, b.End, b.Status)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking insert: %w", err)
	}

	return b, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id uuid.UUID) (Booking, error) {
	sql := selectBooking + `WHERE b.id=$1;`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

func (r *Repository) GetBookingsByBooker(ctx context.Context, bookerID uuid.UUID) ([]Booking, error) {
	sql := selectBooking + `WHERE b.booker_id=$1;`

	rows, err := r.pool.Query(ctx, sql, bookerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for booker '%v': %w", bookerID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Booking, error) {
	sql := selectBooking + `WHERE i.owner_id=$1;`

	rows, err := r.pool.Query(ctx, sql, ownerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for owner '%v': %w", ownerID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

// ConfirmBooking flips a WAITING booking to APPROVED under the item lock.
// Two concurrent approvals of overlapping requests serialize on the lock;
// the loser finds the calendar taken and gets ErrIntervalTaken, or finds
// the booking no longer WAITING and gets ErrAlreadyProcessed.
func (r *Repository) ConfirmBooking(ctx context.Context, b Booking) error {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	if err := lockItem(ctx, tx, b.Item.ID); err != nil {
		return err
	}

	taken, err := existsApprovedOverlap(ctx, tx, b.Item.ID, b.Start, b.End, b.ID)

	if err != nil {
		return err
	}

	if taken {
		return ErrIntervalTaken
	}

	sql := `UPDATE bookings SET status=$1 WHERE id=$2 AND status=$3;`

	tag, err := tx.Exec(ctx, sql, StatusApproved, b.ID, StatusWaiting)

	if err != nil {
		return fmt.Errorf("failed to confirm booking '%v': %w", b.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking confirmation: %w", err)
	}

	return nil
}

// SetBookingStatus updates the status only when the current one is in
// from, so a double reject or cancel surfaces as ErrAlreadyProcessed
// instead of silently rewriting a terminal state.
func (r *Repository) SetBookingStatus(ctx context.Context, id uuid.UUID, status Status, from []Status) error {
	sql := `UPDATE bookings SET status=$1 WHERE id=$2 AND status = ANY($3);`

	tag, err := r.pool.Exec(ctx, sql, status, id, from)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}

	return nil
}

func (r *Repository) ExistsApprovedOverlap(ctx context.Context, itemID uuid.UUID, start, end time.Time) (bool, error) {
	return existsApprovedOverlap(ctx, r.pool, itemID, start, end, uuid.Nil)
}

func (r *Repository) HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	sql := `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE item_id=$1 AND booker_id=$2 AND status=$3 AND end_date <= $4
			);
		`

	var exists bool
	err := r.pool.QueryRow(ctx, sql, itemID, bookerID, StatusApproved, now).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check finished bookings for item '%v': %w", itemID, err)
	}

	return exists, nil
}

func (r *Repository) GetLastBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error) {
	sql := selectBooking + `
		WHERE b.item_id=$1 AND b.status=$2 AND b.end_date <= $3
		ORDER BY b.end_date DESC
		LIMIT 1;
	`

	return r.oneBooking(ctx, sql, itemID, StatusApproved, now)
}

func (r *Repository) GetNextBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error) {
	sql := selectBooking + `
		WHERE b.item_id=$1 AND b.status=$2 AND b.start_date > $3
		ORDER BY b.start_date
		LIMIT 1;
	`

	return r.oneBooking(ctx, sql, itemID, StatusApproved, now)
}

func (r *Repository) oneBooking(ctx context.Context, sql string, args ...any) (*Booking, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, sql, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	return &b, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func lockItem(ctx context.Context, tx pgx.Tx, itemID uuid.UUID) error {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM items WHERE id=$1 FOR UPDATE;`, itemID).Scan(&locked)

	if err != nil {
		return fmt.Errorf("failed to lock item '%v': %w", itemID, err)
	}

	return nil
}

// Overlap of half-open intervals: existing.start < end AND start < existing.end.
func existsApprovedOverlap(ctx context.Context, q queryRower, itemID uuid.UUID, start, end time.Time, exclude uuid.UUID) (bool, error) {
	sql := `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE item_id=$1 AND status=$2 AND id <> $3
				AND start_date < $5 AND $4 < end_date
			);
		`

	var exists bool
	err := q.QueryRow(ctx, sql, itemID, StatusApproved, exclude, start, end).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check approved overlaps for item '%v': %w", itemID, err)
	}

	return exists, nil
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.Start,
		&b.End,
		&b.Status,
		&b.Item.ID,
		&b.Item.Name,
		&b.Item.OwnerID,
		&b.Booker.ID,
		&b.Booker.Name,
	)

	return b, err
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}
