package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sigmaSd/AlbumCam/internal/domain"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	CountPhotos(ctx context.Context) (int64, error)
}

type assetRepository struct {
	db *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (asset_id, file_name, file_size, mime_type, width, height, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		asset.ID, asset.FileName, asset.FileSize, asset.MimeType,
		asset.Width, asset.Height, asset.StoragePath,
	).Scan(&asset.CreatedAt)
}

func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var asset domain.Asset
	query := `SELECT * FROM assets WHERE asset_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &asset, query, id)
	return &asset, err
}

func (r *assetRepository) CountPhotos(ctx context.Context) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM assets WHERE deleted_at IS NULL`
	err := r.db.GetContext(ctx, &total, query)
	return total, err
}
