package item

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

func (r *Repository) InsertItem(ctx context.Context, i Item) (Item, error) {
	sql := `
			INSERT INTO items(id, name, description, available, owner_id, request_id)
			VALUES ($1, $2, $3, $4, $5, $6);
		`

	_, err := r.pool.Exec(ctx, sql, i.ID, i.Name, i.Description, i.Available, i.OwnerID, i.RequestID)

	if err != nil {
		return Item{}, fmt.Errorf("failed to insert item: %w", err)
	}

	return i, nil
}

func (r *Repository) GetItemByID(ctx context.Context, id uuid.UUID) (Item, error) {
	sql := `
			SELECT id, name, description, available, owner_id, request_id
			FROM items
			WHERE id=$1;
		`

	var i Item
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Available,
		&i.OwnerID,
		&i.RequestID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}

	if err != nil {
		return Item{}, fmt.Errorf("failed to fetch item with id %v: %w", id, err)
	}

	return i, nil
}

func (r *Repository) GetItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error) {
	sql := `
			SELECT id, name, description, available, owner_id, request_id
			FROM items
			WHERE owner_id=$1
			ORDER BY name;
		`

	rows, err := r.pool.Query(ctx, sql, ownerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch items for owner '%v': %w", ownerID, err)
	}

	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) SearchItems(ctx context.Context, text string) ([]Item, error) {
	sql := `
			SELECT id, name, description, available, owner_id, request_id
			FROM items
			WHERE available
			AND (LOWER(name) LIKE '%' || $1 || '%' OR LOWER(description) LIKE '%' || $1 || '%')
			ORDER BY name;
		`

	rows, err := r.pool.Query(ctx, sql, text)

	if err != nil {
		return nil, fmt.Errorf("failed to search items for '%v': %w", text, err)
	}

	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) UpdateItem(ctx context.Context, i Item) error {
	sql := `
			UPDATE items
			SET name=$1, description=$2, available=$3
			WHERE id=$4;
		`

	tag, err := r.pool.Exec(ctx, sql, i.Name, i.Description, i.Available, i.ID)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *Repository) InsertComment(ctx context.Context, c Comment) (Comment, error) {
	sql := `
			INSERT INTO comments(id, text, item_id, author_id, created)
			VALUES ($1, $2, $3, $4, $5);
		`

	_, err := r.pool.Exec(ctx, sql, c.ID, c.Text, c.ItemID, c.AuthorID, c.Created)

	if err != nil {
		return Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return c, nil
}

func (r *Repository) GetCommentsByItem(ctx context.Context, itemID uuid.UUID) ([]Comment, error) {
	sql := `
			SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
			FROM comments c
			JOIN users u ON u.id = c.author_id
			WHERE c.item_id=$1
			ORDER BY c.created;
		`

	rows, err := r.pool.Query(ctx, sql, itemID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for item '%v': %w", itemID, err)
	}

	defer rows.Close()

	comments := []Comment{}

	for rows.Next() {
		var c Comment

		err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created)

		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}

		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func scanItems(rows pgx.Rows) ([]Item, error) {
	var items []Item

	for rows.Next() {
		var i Item

		err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID)

		if err != nil {
			return nil, fmt.Errorf("error scanning item row: %w", err)
		}

		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}
