package content

import "strings"

// Contacts are the ways to reach the site owner.
type Contacts struct {
	Email    string `yaml:"email" json:"email" validate:"required,email"`
	GitHub   string `yaml:"github" json:"github,omitempty" validate:"omitempty,url"`
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty" validate:"omitempty,url"`
}

// Profile is the hero block at the top of the page.
type Profile struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Location    string   `yaml:"location" json:"location"`
	Education   string   `yaml:"education" json:"education"`
	CurrentRole string   `yaml:"current_role" json:"current_role"`
	Summary     string   `yaml:"summary" json:"summary" validate:"required"`
	Contacts    Contacts `yaml:"contacts" json:"contacts"`
}

// GitHubHandle renders the GitHub profile URL as "@user". It returns "" when
// no GitHub link is set.
func (p Profile) GitHubHandle() string {
	u := strings.TrimRight(p.Contacts.GitHub, "/")
	if u == "" {
		return ""
	}
	if i := strings.LastIndex(u, "/"); i >= 0 {
		u = u[i+1:]
	}
	return "@" + u
}

type Skill struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

type SkillCategory struct {
	Category string  `yaml:"category" json:"category" validate:"required"`
	Skills   []Skill `yaml:"skills" json:"skills" validate:"required,min=1,dive"`
}

type Project struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Tech        []string `yaml:"tech" json:"tech"`
	Duration    string   `yaml:"duration" json:"duration"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Impact      string   `yaml:"impact" json:"impact"`
	Accuracy    string   `yaml:"accuracy,omitempty" json:"accuracy,omitempty"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
	GitHubLink  string   `yaml:"github_link,omitempty" json:"github_link,omitempty" validate:"omitempty,url"`
}

// HasLinks reports whether the project card needs a links row.
func (p Project) HasLinks() bool { return p.Link != "" || p.GitHubLink != "" }

type Experience struct {
	Position     string   `yaml:"position" json:"position" validate:"required"`
	Organization string   `yaml:"organization" json:"organization" validate:"required"`
	Duration     string   `yaml:"duration" json:"duration"`
	Location     string   `yaml:"location" json:"location"`
	Description  []string `yaml:"description" json:"description"`
	Highlights   []string `yaml:"highlights" json:"highlights"`
}

type Achievement struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Link        string `yaml:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
}

type Certification struct {
	ID             string `yaml:"id" json:"id" validate:"required"`
	Name           string `yaml:"name" json:"name" validate:"required"`
	Issuer         string `yaml:"issuer" json:"issuer"`
	Date           string `yaml:"date" json:"date"`
	CredentialLink string `yaml:"credential_link,omitempty" json:"credential_link,omitempty" validate:"omitempty,url"`
}

// Site is every record the page renders. It is built once by Load and never
// mutated afterwards.
type Site struct {
	Profile        Profile         `json:"profile"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Experience     []Experience    `json:"experience"`
	Achievements   []Achievement   `json:"achievements"`
	Certifications []Certification `json:"certifications"`
}
