// Package api holds the typed REST surface of the platform: one service per
// domain, one method per endpoint. Methods build a path and payload, call
// the gateway, and return the decoded response untransformed — no business
// logic lives here.
package api

import "time"

// Roles a user account can hold.
const (
	RoleUser    = "user"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// User is the server-owned account snapshot. The client caches it with the
// session and treats it as read-mostly; pc_points is the activity currency,
// pcon_points the spendable one.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role,omitempty"`
	PCPoints   int       `json:"pc_points"`
	PConPoints int       `json:"pcon_points"`
	Rank       string    `json:"rank"`
	IsAdmin    bool      `json:"is_admin"`
	IsCompany  bool      `json:"is_company"`
	IsBanned   bool      `json:"is_banned"`
	CreatedAt  time.Time `json:"created_at"`

	Bio          string   `json:"bio,omitempty"`
	Location     string   `json:"location,omitempty"`
	Website      string   `json:"website,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	LinkedIn     string   `json:"linkedin,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// HasRole checks role across both encodings the API uses (a role string on
// newer payloads, boolean flags on older ones).
func (u User) HasRole(role string) bool {
	if u.Role == role {
		return true
	}
	switch role {
	case RoleAdmin:
		return u.IsAdmin
	case RoleCompany:
		return u.IsCompany
	}
	return false
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Post is one social feed entry. The like counters are mutated optimistically
// by the feed controller; the authoritative values live server-side.
type Post struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	PostType       string    `json:"post_type"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	LikesCount     int       `json:"likes_count"`
	CommentsCount  int       `json:"comments_count"`
	SharesCount    int       `json:"shares_count"`
	IsLiked        bool      `json:"is_liked"`
	ImageURL       string    `json:"image_url,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Comment struct {
	ID             string    `json:"id"`
	PostID         string    `json:"post_id"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Likes          int       `json:"likes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Portfolio is a featured project submission, voteable by other users.
type Portfolio struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserUsername string    `json:"user_username"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ProjectURL   string    `json:"project_url"`
	ImageURL     string    `json:"image_url,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Votes        int       `json:"votes"`
	HasVoted     bool      `json:"has_voted"`
	WeekYear     string    `json:"week_year,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
}

type Question struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Code           string    `json:"code,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Votes          int       `json:"votes"`
	AnswersCount   int       `json:"answers_count"`
	Views          int       `json:"views"`
	CreatedAt      time.Time `json:"created_at"`
}

type Answer struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"question_id"`
	Content     string    `json:"content"`
	Code        string    `json:"code,omitempty"`
	AuthorID    string    `json:"author_id"`
	Votes       int       `json:"votes"`
	IsValidated bool      `json:"is_validated"`
	CreatedAt   time.Time `json:"created_at"`
}

type Article struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Upvotes        int       `json:"upvotes"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"created_at"`
}

type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Requirements []string  `json:"requirements,omitempty"`
	SalaryRange string     `json:"salary_range,omitempty"`
	Location    string     `json:"location"`
	Remote      bool       `json:"remote"`
	CompanyID   string     `json:"company_id"`
	CompanyName string     `json:"company_name"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type JobApplication struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	UserID      string    `json:"user_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type StoreItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CostPCon    int       `json:"cost_pcon"`
	ItemType    string    `json:"item_type,omitempty"`
	Category    string    `json:"category,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type InventoryItem struct {
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	AcquiredAt time.Time `json:"acquired_at"`
}

type Purchase struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	TotalCost int       `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminStats struct {
	TotalUsers     int `json:"total_users"`
	TotalPosts     int `json:"total_posts"`
	TotalQuestions int `json:"total_questions"`
	TotalAnswers   int `json:"total_answers"`
	TotalArticles  int `json:"total_articles"`
	TotalJobs      int `json:"total_jobs"`
}
