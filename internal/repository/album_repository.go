package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sigmaSd/AlbumCam/internal/domain"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByTitle(ctx context.Context, title string) (*domain.Album, error)
	List(ctx context.Context) ([]domain.Album, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddAssets(ctx context.Context, albumID uuid.UUID, assetIDs []uuid.UUID) error
	CountAssets(ctx context.Context, albumID uuid.UUID) (int64, error)
}

type albumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	query := `
		INSERT INTO albums (album_id, title)
		VALUES ($1, $2)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query, album.ID, album.Title).Scan(&album.CreatedAt)
}

// GetByTitle matches case-insensitively and returns (nil, nil) when no album
// with that title exists.
func (r *albumRepository) GetByTitle(ctx context.Context, title string) (*domain.Album, error) {
	var album domain.Album
	query := `
		SELECT a.album_id, a.title, a.created_at,
		       COUNT(aa.asset_id) AS asset_count
		FROM albums a
		LEFT JOIN album_assets aa ON aa.album_id = a.album_id
		WHERE LOWER(a.title) = LOWER($1) AND a.deleted_at IS NULL
		GROUP BY a.album_id`
	err := r.db.GetContext(ctx, &album, query, title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) List(ctx context.Context) ([]domain.Album, error) {
	var albums []domain.Album
	query := `
		SELECT a.album_id, a.title, a.created_at,
		       COUNT(aa.asset_id) AS asset_count
		FROM albums a
		LEFT JOIN album_assets aa ON aa.album_id = a.album_id
		WHERE a.deleted_at IS NULL
		GROUP BY a.album_id
		ORDER BY a.created_at`
	err := r.db.SelectContext(ctx, &albums, query)
	return albums, err
}

// Delete removes the album and its memberships. The assets themselves are
// untouched; deleting an album never deletes photos.
func (r *albumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM album_assets WHERE album_id = $1`, id); err != nil {
		return err
	}
	query := `UPDATE albums SET deleted_at = NOW() WHERE album_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *albumRepository) AddAssets(ctx context.Context, albumID uuid.UUID, assetIDs []uuid.UUID) error {
	query := `
		INSERT INTO album_assets (album_id, asset_id)
		VALUES ($1, $2)
		ON CONFLICT (album_id, asset_id) DO NOTHING`
	for _, assetID := range assetIDs {
		if _, err := r.db.ExecContext(ctx, query, albumID, assetID); err != nil {
			return err
		}
	}
	return nil
}

func (r *albumRepository) CountAssets(ctx context.Context, albumID uuid.UUID) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM album_assets WHERE album_id = $1`
	err := r.db.GetContext(ctx, &total, query, albumID)
	return total, err
}
