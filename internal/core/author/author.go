package author

// Author represents a writer featured in the adaptation catalog.
type Author struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"imageUrl"`
	NotableWorks []string `json:"notableWorks"`
}

// Global field names for validation
const (
	FieldName         = "name"
	FieldBio          = "bio"
	FieldImageURL     = "imageUrl"
	FieldNotableWorks = "notableWorks"
)
