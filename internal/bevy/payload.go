package bevy

// Payload is the event object Bevy sends in its event webhooks. Timestamps
// are kept as strings; only StartDate is parsed, when mapping to an event.
type Payload struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Status           string       `json:"status"`
	URL              string       `json:"url"`
	DescriptionShort string       `json:"description_short"`
	StartDate        string       `json:"start_date"`
	EndDate          string       `json:"end_date"`
	EventTypeID      int64        `json:"event_type_id"`
	Picture          *Picture     `json:"picture,omitempty"`
	VenueName        string       `json:"venue_name"`
	VenueAddress     string       `json:"venue_address"`
	VenueCity        string       `json:"venue_city"`
	VenueZipCode     string       `json:"venue_zip_code"`
	CreatedTS        string       `json:"created_ts"`
	UpdatedTS        string       `json:"updated_ts"`
	Tickets          []Ticket     `json:"tickets"`
	PublishDate      string       `json:"publish_date"`
	PublishedBy      *User        `json:"published_by,omitempty"`
	Description      string       `json:"description"`
	IsHidden         bool         `json:"is_hidden"`
	TotalAttendees   int          `json:"total_attendees"`
	CheckinCount     int          `json:"checkin_count"`
	Chapter          *ChapterInfo `json:"chapter"`
}

type Picture struct {
	URL             string `json:"url"`
	ThumbnailWidth  int    `json:"thumbnail_width"`
	ThumbnailHeight int    `json:"thumbnail_height"`
	ThumbnailURL    string `json:"thumbnail_url"`
}

type Ticket struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	SaleStartDate   string  `json:"sale_start_date"`
	SaleEndDate     string  `json:"sale_end_date"`
	MinPerOrder     int     `json:"min_per_order"`
	MaxPerOrder     int     `json:"max_per_order"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	IsForSale       bool    `json:"is_for_sale"`
	Visible         bool    `json:"visible"`
	WaitlistEnabled bool    `json:"waitlist_enabled"`
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ChapterInfo struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	Timezone    string       `json:"timezone"`
	URL         string       `json:"url"`
	ChapterTeam []TeamMember `json:"chapter_team"`
}

type TeamMember struct {
	ID    int64  `json:"id"`
	User  User   `json:"user"`
	Title string `json:"title"`
	Role  Role   `json:"role"`
}

type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
