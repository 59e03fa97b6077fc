package i18nk

type Key string

const (
	EmptyInput           Key = "empty_input"
	FetchFailed          Key = "fetch_failed"
	FetchUnreachable     Key = "fetch_unreachable"
	FetchBadStatus       Key = "fetch_bad_status"
	FetchInvalidDocument Key = "fetch_invalid_document"

	Overview         Key = "overview"
	Theme            Key = "theme"
	Created          Key = "created"
	LastUpdated      Key = "last_updated"
	HexCode          Key = "hex_code"
	Icon             Key = "icon"
	Slug             Key = "slug"
	OpenContent      Key = "open_content"
	OpenSource       Key = "open_source"
	Thumbnail        Key = "thumbnail"
	CardsCount       Key = "cards_count"
	InputPlaceholder Key = "input_placeholder"
	Analyze          Key = "analyze"
	Analyzing        Key = "analyzing"
	NoModel          Key = "no_model"
	HelpKeys         Key = "help_keys"
)
