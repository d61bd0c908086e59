package models

// Types describing the upstream content catalog payloads and the uniform
// record the gateway returns to its own callers.
//
// The upstream API serves two entity kinds from two endpoints: characters
// (carrying a name and a comics appearance summary) and comics (carrying a
// title and a list of dates). Field presence is the only reliable
// discriminator between the two, so RawEntity keeps the marker fields as
// a pointer and a slice and lets the normalizer inspect them once.

// Thumbnail is the image reference attached to every catalog entity.
// The upstream splits the URL into a path and an extension; the gateway
// always serves the ".jpg" rendition.
type Thumbnail struct {
	Path string `json:"path"`
}

// ComicsSummary is the appearance counter present only on character
// entities. Its presence marks the entity as a character.
type ComicsSummary struct {
	Available int `json:"available"`
}

// EntityDate is one dated event of a comic entity (on-sale date, FOC date,
// etc.). The presence of a dates list marks the entity as a comic.
type EntityDate struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// RawEntity is a single undiscriminated result from the upstream catalog.
// Exactly one of Comics and Dates is expected to be present; entities with
// neither are rejected as malformed.
type RawEntity struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Title     string         `json:"title"`
	Thumbnail Thumbnail      `json:"thumbnail"`
	Comics    *ComicsSummary `json:"comics,omitempty"`
	Dates     []EntityDate   `json:"dates,omitempty"`
}

// Kind inspects the marker fields once and reports which variant the entity
// is. A missing dates field decodes to a nil slice, while an explicit empty
// list decodes to a non-nil one, so presence and emptiness stay
// distinguishable. Entities with neither marker yield the zero EntityKind.
func (e RawEntity) Kind() EntityKind {
	switch {
	case e.Comics != nil:
		return KindCharacter
	case e.Dates != nil:
		return KindComic
	default:
		return 0
	}
}

// CatalogPayload is the envelope the upstream wraps every successful
// response in.
type CatalogPayload struct {
	Data struct {
		Results []RawEntity `json:"results"`
	} `json:"data"`
}

// EntityKind discriminates the two catalog entity variants after parsing.
type EntityKind int

const (
	// KindCharacter marks an entity that carried a comics summary.
	KindCharacter EntityKind = iota + 1

	// KindComic marks an entity that carried a dates list.
	KindComic
)

// String returns a human-readable label for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindComic:
		return "comic"
	default:
		return "unknown"
	}
}

// NormalizedResult is the uniform record the gateway returns for both
// entity kinds.
//
// Label holds the character name or the comic title. Meta holds the
// appearance count (as a decimal string) for characters, or the first date
// string for comics. ImageURL is always the thumbnail path with the ".jpg"
// extension appended.
type NormalizedResult struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
	Meta     string `json:"meta"`
}
