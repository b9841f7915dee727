package search

// Severity classifies a user-facing notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

// Notice is a short message for the toast collaborator.
type Notice struct {
	Severity Severity
	Message  string
}

// Notifier shows notices to the user.
type Notifier interface {
	Notify(Notice)
}

// Viewer is the image viewer collaborator. Refresh is called after every
// render with the full-size links of every card in the gallery.
type Viewer interface {
	Refresh(links []string)
}

// User-facing messages.
const (
	MsgEmptyQuery    = "The search field cannot be empty!"
	MsgNoResults     = "Sorry, there are no images matching your search query. Please try again!"
	MsgSearchFailed  = "Something went wrong. Please try again later."
	MsgLoadMoreError = "Something went wrong while loading more images."
	MsgEndOfResults  = "We're sorry, but you've reached the end of search results."
)

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}

type nopViewer struct{}

func (nopViewer) Refresh([]string) {}
