package place

// Type classifies a literary location on the mock map.
type Type string

const (
	TypeFair    Type = "Fair"
	TypeStore   Type = "Store"
	TypeMarket  Type = "Market"
	TypeLibrary Type = "Library"
)

// Place is a pinned literary location. X and Y are percentage
// coordinates on the stylized map image, not geo coordinates.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        Type    `json:"type"`
	Date        *string `json:"date,omitempty"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Address     string  `json:"address"`
}
