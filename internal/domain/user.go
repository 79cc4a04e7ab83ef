package domain

import (
	"encoding/json"
	"fmt"
)

// Role identifies which kind of account a user holds
type Role string

const (
	RoleSeeker  Role = "seeker"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one the backend knows about
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// User is the common view over the three account variants.
// Concrete types are Seeker, Company and Admin; narrow with a type
// assertion after checking UserRole.
type User interface {
	UserID() string
	UserRole() Role
	DisplayName() string
	AvatarURL() string
}

// Seeker represents a job seeker account
type Seeker struct {
	ID          string   `json:"id"`
	Role        Role     `json:"role"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhotoURL    string   `json:"photoUrl"`
	ResumeURL   string   `json:"resumeUrl"`
	Headline    string   `json:"headline"`
	Skills      []string `json:"skills"`
	AppliedJobs []string `json:"appliedJobs"`
}

func (s *Seeker) UserID() string      { return s.ID }
func (s *Seeker) UserRole() Role      { return RoleSeeker }
func (s *Seeker) DisplayName() string { return s.Name }
func (s *Seeker) AvatarURL() string   { return s.PhotoURL }

// HasApplied reports whether the seeker already applied to the job
func (s *Seeker) HasApplied(jobID string) bool {
	for _, id := range s.AppliedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// Company represents an employer account
type Company struct {
	ID          string `json:"id"`
	Role        Role   `json:"role"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LogoURL     string `json:"logo"`
	Website     string `json:"website"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo"`
}

func (c *Company) UserID() string      { return c.ID }
func (c *Company) UserRole() Role      { return RoleCompany }
func (c *Company) DisplayName() string { return c.Name }
func (c *Company) AvatarURL() string   { return c.LogoURL }

// Admin represents an administrator account
type Admin struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
}

func (a *Admin) UserID() string      { return a.ID }
func (a *Admin) UserRole() Role      { return RoleAdmin }
func (a *Admin) DisplayName() string { return a.Name }
func (a *Admin) AvatarURL() string   { return a.PhotoURL }

// DecodeUser unmarshals a user object by peeking at its role tag first,
// so callers get a concrete Seeker/Company/Admin instead of a loose map.
func DecodeUser(data []byte) (User, error) {
	var tag struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}

	role, err := ParseRole(tag.Role)
	if err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}

	switch role {
	case RoleSeeker:
		var s Seeker
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode seeker: %w", err)
		}
		s.Role = RoleSeeker
		return &s, nil
	case RoleCompany:
		var c Company
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		c.Role = RoleCompany
		return &c, nil
	default:
		var a Admin
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode admin: %w", err)
		}
		a.Role = RoleAdmin
		return &a, nil
	}
}
