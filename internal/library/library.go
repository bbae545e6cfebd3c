// Package library implements the photo library: image bytes live in MinIO,
// the asset and album catalog lives in Postgres. Albums are treated as
// idempotent buckets keyed by title: get-or-create, then append.
package library

import (
	"context"

	"github.com/sigmaSd/AlbumCam/internal/domain"
)

type Library interface {
	// CreateAsset commits the image file at uri into the library. Ownership
	// of the photo transfers to the library on success.
	CreateAsset(ctx context.Context, uri string) (*domain.Asset, error)
	// GetAlbumByName returns (nil, nil) when the album does not exist.
	GetAlbumByName(ctx context.Context, name string) (*domain.Album, error)
	CreateAlbum(ctx context.Context, name string, first *domain.Asset) (*domain.Album, error)
	// AddAssetsToAlbum appends without moving; an asset stays in the default
	// roll when it is added to an album.
	AddAssetsToAlbum(ctx context.Context, assets []*domain.Asset, album *domain.Album) error
	ListAlbums(ctx context.Context) ([]domain.Album, error)
	// DeleteAlbum removes the album only, never its photos. Returns false
	// when no album with that name exists.
	DeleteAlbum(ctx context.Context, name string) (bool, error)
	CountAllPhotos(ctx context.Context) (int64, error)
}
