package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Asset AssetRepository
	Album AlbumRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Asset: NewAssetRepository(db),
		Album: NewAlbumRepository(db),
	}
}
