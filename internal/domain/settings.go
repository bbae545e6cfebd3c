package domain

// Settings is the whole persisted state of the app outside the photo library:
// the location list, the current selection and the haptic feedback toggle.
// It is read wholesale at startup and written wholesale after every mutation.
type Settings struct {
	Locations          []Location `json:"locations"`
	SelectedLocationID string     `json:"selected_location_id"`
	HapticEnabled      bool       `json:"haptic_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		Locations:          []Location{DefaultLocation()},
		SelectedLocationID: DefaultLocationID,
		HapticEnabled:      true,
	}
}
