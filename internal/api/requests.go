package api

import (
	"net/url"
	"strconv"
	"time"
)

// Vote directions accepted by question and answer voting.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// ListParams are the pagination and search query parameters every list
// endpoint accepts. Zero values are omitted.
type ListParams struct {
	Skip   int
	Limit  int
	Search string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	IsCompany          bool   `json:"is_company,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
}

type ProfileUpdate struct {
	Bio      string   `json:"bio,omitempty"`
	Location string   `json:"location,omitempty"`
	Website  string   `json:"website,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PostCreate struct {
	Content  string   `json:"content"`
	PostType string   `json:"post_type"`
	ImageURL string   `json:"image_url,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type CommentCreate struct {
	Content string `json:"content"`
}

type PortfolioSubmit struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ProjectURL   string   `json:"project_url"`
	ImageURL     string   `json:"image_url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type QuestionCreate struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Code    string   `json:"code,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type AnswerCreate struct {
	Content string `json:"content"`
	Code    string `json:"code,omitempty"`
}

type voteRequest struct {
	VoteType string `json:"vote_type"`
}

type ArticleCreate struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
}

type JobCreate struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements,omitempty"`
	SalaryRange  string     `json:"salary_range,omitempty"`
	Location     string     `json:"location"`
	Remote       bool       `json:"remote"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type JobApply struct {
	CoverLetter string `json:"cover_letter,omitempty"`
}

type purchaseRequest struct {
	Quantity int `json:"quantity"`
}

type RoleUpdate struct {
	Role string `json:"role"`
}
