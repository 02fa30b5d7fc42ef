package catalog

// Rating is the 0..5 scale shared by authors and books. It serializes as a
// plain number.
type Rating int

type BookCover string

const (
	CoverPaperbook BookCover = "paperbook"
	CoverHardcover BookCover = "hardcover"
)

type BookStatus string

const (
	StatusAvailable   BookStatus = "available"
	StatusUnavailable BookStatus = "unavailable"
)

type BookFormat string

const (
	FormatEbook BookFormat = "e-book"
	FormatPaper BookFormat = "paper"
	FormatAudio BookFormat = "audio"
)
