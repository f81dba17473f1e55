// Package constants defines shared application constants.
package constants

// Table names
const (
	TableUsers         = "users"
	TableOAuthAccounts = "oauth_accounts"
	TableStories       = "stories"
	TableChapters      = "chapters"
	TableLikes         = "likes"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// Genres available for stories
var Genres = []string{
	"Romance",
	"Fantasy",
	"Drama",
	"Adventure",
	"Poetry",
	"Historical",
	"Mystery",
	"Thriller",
	"Science Fiction",
	"Folklore",
	"Biography",
	"Religious",
	"Other",
}

// Languages stories can be written in
var Languages = []string{
	"amharic",
	"oromo",
	"tigrinya",
	"somali",
	"english",
}

// IsValidGenre reports whether the genre is one of the supported genres.
func IsValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// IsValidLanguage reports whether the language code is supported.
func IsValidLanguage(language string) bool {
	for _, l := range Languages {
		if l == language {
			return true
		}
	}
	return false
}
