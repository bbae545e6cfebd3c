package domain

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a photo committed to the library. Ownership of the image bytes
// transfers to the library the moment the asset is created; album placement is
// bookkeeping layered on top and may lag or fail independently.
type Asset struct {
	ID          uuid.UUID  `json:"id" db:"asset_id"`
	FileName    string     `json:"file_name" db:"file_name"`
	FileSize    int64      `json:"file_size" db:"file_size"`
	MimeType    string     `json:"mime_type" db:"mime_type"`
	Width       int        `json:"width" db:"width"`
	Height      int        `json:"height" db:"height"`
	StoragePath string     `json:"-" db:"storage_path"`
	URL         string     `json:"url" db:"-"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}

// Album is the library's native grouping construct, addressed by title.
type Album struct {
	ID         uuid.UUID `json:"id" db:"album_id"`
	Title      string    `json:"title" db:"title"`
	AssetCount int64     `json:"asset_count" db:"asset_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SharedImage is a transient reference to an image handed in from an external
// share action. It has the same shape as a capture result and is not retained
// after it is committed into the library.
type SharedImage struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	MimeType string `json:"type"`
}

// ShareResult reports how many of the shared images were committed. Per-image
// failures are skipped, not fatal.
type ShareResult struct {
	SavedCount int `json:"saved_count"`
}

// CaptureResult is what a completed capture reports back: the committed asset,
// where it was routed and the destination's photo count afterwards.
type CaptureResult struct {
	Asset      *Asset   `json:"asset"`
	Location   Location `json:"location"`
	PhotoCount int64    `json:"photo_count"`
}
