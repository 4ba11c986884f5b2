package domain

// GenreChoices are the genres a venue or artist may be tagged with.
var GenreChoices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

// StateChoices are the accepted two-letter US state codes.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var (
	genreSet = toSet(GenreChoices)
	stateSet = toSet(StateChoices)
)

func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

// IsKnownGenre reports whether g is one of GenreChoices.
func IsKnownGenre(g string) bool {
	_, ok := genreSet[g]
	return ok
}

// IsKnownState reports whether s is one of StateChoices.
func IsKnownState(s string) bool {
	_, ok := stateSet[s]
	return ok
}

// FormChoices is returned by the create form endpoints so a client can
// render select inputs.
type FormChoices struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

// NewFormChoices returns the genre and state choice lists.
func NewFormChoices() FormChoices {
	return FormChoices{Genres: GenreChoices, States: StateChoices}
}
