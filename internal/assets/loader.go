package assets

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "reader"

// StyleLoader defines the contract for loading CSS styles.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}
