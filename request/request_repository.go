package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertRequest(ctx context.Context, req ItemRequest) (ItemRequest, error) {
	sql := `
			INSERT INTO requests(id, description, requester_id, created)
			VALUES ($1, $2, $3, $4);
		`

	_, err := r.pool.Exec(ctx, sql, req.ID, req.Description, req.RequesterID, req.Created)

	if err != nil {
		return ItemRequest{}, fmt.Errorf("failed to insert item request: %w", err)
	}

	return req, nil
}

func (r *Repository) GetRequestByID(ctx context.Context, id uuid.UUID) (ItemRequest, error) {
	sql := `SELECT id, description, requester_id, created FROM requests WHERE id=$1;`

	var req ItemRequest
	err := r.pool.QueryRow(ctx, sql, id).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)

	if errors.Is(err, pgx.ErrNoRows) {
		return ItemRequest{}, ErrRequestNotFound
	}

	if err != nil {
		return ItemRequest{}, fmt.Errorf("failed to fetch item request with id %v: %w", id, err)
	}

	return req, nil
}

func (r *Repository) GetRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]ItemRequest, error) {
	sql := `
			SELECT id, description, requester_id, created
			FROM requests
			WHERE requester_id=$1
			ORDER BY created DESC;
		`

	return r.queryRequests(ctx, sql, requesterID)
}

func (r *Repository) GetRequestsOfOthers(ctx context.Context, requesterID uuid.UUID) ([]ItemRequest, error) {
	sql := `
			SELECT id, description, requester_id, created
			FROM requests
			WHERE requester_id<>$1
			ORDER BY created DESC;
		`

	return r.queryRequests(ctx, sql, requesterID)
}

func (r *Repository) GetRepliesByRequest(ctx context.Context, requestID uuid.UUID) ([]ItemReply, error) {
	sql := `SELECT id, name, owner_id FROM items WHERE request_id=$1 ORDER BY name;`

	rows, err := r.pool.Query(ctx, sql, requestID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies for request '%v': %w", requestID, err)
	}

	defer rows.Close()

	replies := []ItemReply{}

	for rows.Next() {
		var reply ItemReply

		if err := rows.Scan(&reply.ID, &reply.Name, &reply.OwnerID); err != nil {
			return nil, fmt.Errorf("error scanning item reply row: %w", err)
		}

		replies = append(replies, reply)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item reply rows: %w", err)
	}

	return replies, nil
}

func (r *Repository) queryRequests(ctx context.Context, sql string, requesterID uuid.UUID) ([]ItemRequest, error) {
	rows, err := r.pool.Query(ctx, sql, requesterID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch item requests: %w", err)
	}

	defer rows.Close()

	var requests []ItemRequest

	for rows.Next() {
		var req ItemRequest

		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("error scanning item request row: %w", err)
		}

		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item request rows: %w", err)
	}

	return requests, nil
}
