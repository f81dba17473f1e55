package story

// Sort orders for browse and search.
const (
	SortRelevance = "relevance"
	SortPopular   = "popular"
	SortRecent    = "recent"
	SortLikes     = "likes"
)

// MaxPageSize caps how many stories a single listing request can return.
const MaxPageSize = 50

// ListFilter narrows a story listing. Zero values mean "no constraint".
// ViewerID widens visibility to include the viewer's own drafts; Query is a
// case-insensitive substring match against title and description.
type ListFilter struct {
	Query    string
	Genre    string
	Language string
	Status   string
	AuthorID uint
	ViewerID uint
	Sort     string
	Limit    int
	Offset   int
}

// Normalize clamps the page size and defaults the sort order.
func (f *ListFilter) Normalize() {
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	switch f.Sort {
	case SortRelevance, SortPopular, SortRecent, SortLikes:
	default:
		f.Sort = SortRelevance
	}
}
