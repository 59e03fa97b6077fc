package display

const (
	DefaultName        = "Default Site Name"
	DefaultDescription = "Default description."
	DefaultTheme       = "Default theme"
	DefaultHexCode     = "#000000"
	NotSpecified       = "Not specified"
)

// Model is the fully defaulted view of a site manifest. A Model is never
// mutated after Map returns it.
type Model struct {
	Name               string `json:"name" yaml:"name"`
	Description        string `json:"description" yaml:"description"`
	LogoURL            string `json:"logoUrl" yaml:"logoUrl"`
	Theme              string `json:"theme" yaml:"theme"`
	HexCode            string `json:"hexCode" yaml:"hexCode"`
	IconToken          string `json:"iconToken" yaml:"iconToken"`
	CreatedDisplay     string `json:"createdDisplay" yaml:"createdDisplay"`
	LastUpdatedDisplay string `json:"lastUpdatedDisplay" yaml:"lastUpdatedDisplay"`
	BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
	Cards              []Card `json:"cards" yaml:"cards"`
}

// Card is one manifest item ready for display.
type Card struct {
	Title              string `json:"title" yaml:"title"`
	Description        string `json:"description" yaml:"description"`
	Slug               string `json:"slug" yaml:"slug"`
	SlugURL            string `json:"slugUrl" yaml:"slugUrl"`
	LocationURL        string `json:"locationUrl" yaml:"locationUrl"`
	ThumbnailURL       string `json:"thumbnailUrl" yaml:"thumbnailUrl"`
	LastUpdatedDisplay string `json:"lastUpdatedDisplay" yaml:"lastUpdatedDisplay"`
}
