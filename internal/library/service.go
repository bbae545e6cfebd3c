package library

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/sigmaSd/AlbumCam/internal/config"
	"github.com/sigmaSd/AlbumCam/internal/domain"
	"github.com/sigmaSd/AlbumCam/internal/repository"
)

type service struct {
	assetRepo   repository.AssetRepository
	albumRepo   repository.AlbumRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(assetRepo repository.AssetRepository, albumRepo repository.AlbumRepository, minioClient *minio.Client, cfg *config.Config) Library {
	return &service{
		assetRepo:   assetRepo,
		albumRepo:   albumRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) CreateAsset(ctx context.Context, uri string) (*domain.Asset, error) {
	file, err := os.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", uri, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	width, height := imageDimensions(file)
	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}

	assetID := uuid.New()
	ext := strings.ToLower(filepath.Ext(uri))
	if ext == "" {
		ext = ".jpg"
	}
	storagePath := fmt.Sprintf("photos/%s/%s%s", time.Now().Format("2006/01"), assetID.String(), ext)

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, file, info.Size(), minio.PutObjectOptions{
		ContentType: mimeTypeForExt(ext),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	asset := &domain.Asset{
		ID:          assetID,
		FileName:    filepath.Base(uri),
		FileSize:    info.Size(),
		MimeType:    mimeTypeForExt(ext),
		Width:       width,
		Height:      height,
		StoragePath: storagePath,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	asset.URL = s.getPublicURL(storagePath)
	return asset, nil
}

func (s *service) GetAlbumByName(ctx context.Context, name string) (*domain.Album, error) {
	return s.albumRepo.GetByTitle(ctx, name)
}

func (s *service) CreateAlbum(ctx context.Context, name string, first *domain.Asset) (*domain.Album, error) {
	album := &domain.Album{
		ID:    uuid.New(),
		Title: name,
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}

	if first != nil {
		if err := s.albumRepo.AddAssets(ctx, album.ID, []uuid.UUID{first.ID}); err != nil {
			return nil, err
		}
		album.AssetCount = 1
	}
	return album, nil
}

func (s *service) AddAssetsToAlbum(ctx context.Context, assets []*domain.Asset, album *domain.Album) error {
	ids := make([]uuid.UUID, 0, len(assets))
	for _, asset := range assets {
		ids = append(ids, asset.ID)
	}
	return s.albumRepo.AddAssets(ctx, album.ID, ids)
}

func (s *service) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	return s.albumRepo.List(ctx)
}

func (s *service) DeleteAlbum(ctx context.Context, name string) (bool, error) {
	album, err := s.albumRepo.GetByTitle(ctx, name)
	if err != nil {
		return false, err
	}
	if album == nil {
		return false, nil
	}
	if err := s.albumRepo.Delete(ctx, album.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) CountAllPhotos(ctx context.Context) (int64, error) {
	return s.assetRepo.CountPhotos(ctx)
}

func (s *service) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}

// imageDimensions decodes just the header; unknown formats report 0x0 rather
// than failing the commit.
func imageDimensions(file *os.File) (int, int) {
	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

func mimeTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
