package domain

import "time"

// Fields is a bag of named item attributes. Drafts, create payloads and
// partial updates are all expressed as Fields; the concrete model types
// below are the decoded wire shapes.
type Fields map[string]any

// Item is implemented by every record managed by a screen.
type Item interface {
	ItemID() string
}

// Ad represents an advertisement banner
type Ad struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func (a Ad) ItemID() string { return a.ID }

// Tagline represents a site tagline
type Tagline struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func (t Tagline) ItemID() string { return t.ID }

// Testimonial represents customer feedback shown on the site
type Testimonial struct {
	ID           string    `json:"_id"`
	FullName     string    `json:"fullName"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	FeedbackText string    `json:"feedbackText"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

func (t Testimonial) ItemID() string { return t.ID }

// Blog represents a blog post
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Creator   string    `json:"creator"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	Slugs     string    `json:"slugs"`
	TimeChips string    `json:"timeChips"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func (b Blog) ItemID() string { return b.ID }

// Viewer represents a collected site visitor lead
type Viewer struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullname"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func (v Viewer) ItemID() string { return v.ID }

// Freebie represents a freebie/PDF download request
type Freebie struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func (f Freebie) ItemID() string { return f.ID }

// User is the authenticated console operator returned by the login endpoint.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
