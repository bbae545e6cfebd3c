package domain

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultLocationID is reserved for the built-in location that maps to the
// platform's default photo roll. It is never reassigned or removed.
const DefaultLocationID = "1"

// Location is a user-defined logical photo destination. Non-default locations
// map onto a platform album of the same name.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

func (l Location) IsDefault() bool {
	return l.ID == DefaultLocationID
}

func DefaultLocation() Location {
	return Location{
		ID:   DefaultLocationID,
		Name: "Default",
		Path: "DCIM/CameraApp",
	}
}

var lastLocationID atomic.Int64

// nextLocationID is the creation time in Unix milliseconds, bumped past the
// previous id when two locations are created within the same millisecond.
func nextLocationID() string {
	for {
		now := time.Now().UnixMilli()
		last := lastLocationID.Load()
		if now <= last {
			now = last + 1
		}
		if lastLocationID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}

// NewLocation creates a location with a fresh timestamp-derived id.
func NewLocation(name string) Location {
	return Location{
		ID:   nextLocationID(),
		Name: name,
		Path: "DCIM/" + name,
	}
}

const maxAlbumNameLength = 50

const invalidAlbumNameChars = `<>:"/\|?*`

// ValidateAlbumName checks a user-typed album name. The rules mirror what the
// host filesystems accept as album directory names.
func ValidateAlbumName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: album name cannot be empty", ErrValidation)
	}
	if len([]rune(trimmed)) > maxAlbumNameLength {
		return fmt.Errorf("%w: album name must be 50 characters or less", ErrValidation)
	}
	if strings.ContainsAny(name, invalidAlbumNameChars) {
		return fmt.Errorf("%w: album name contains invalid characters", ErrValidation)
	}
	return nil
}
