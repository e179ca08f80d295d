// Package portfolio holds the in-memory state of one portfolio page: the
// profile photo, the skill and project lists, and the unsubmitted drafts.
//
// Lists only grow. Rejected adds are silent no-ops that leave the drafts
// exactly as typed.
package portfolio

import (
	"strings"

	"portfolio/internal/photo"
)

// Project is one entry in the project list.
type Project struct {
	Title       string
	Description string
}

// SeedSkills returns the skills every new portfolio starts with.
func SeedSkills() []string {
	return []string{"Java", "HTML", "CSS"}
}

// SeedProjects returns the projects every new portfolio starts with.
func SeedProjects() []Project {
	return []Project{
		{Title: "College Department Website", Description: "Responsive website built using HTML, CSS, JS."},
		{Title: "Clinic Appointment System", Description: "Dynamic Web Project using Hibernate & MySQL."},
	}
}

// Portfolio is the state owned by a single editor instance.
type Portfolio struct {
	Photo      *photo.Ref
	Skills     []string
	Projects   []Project
	NewSkill   string
	NewProject Project
}

// New returns a portfolio with the seed skills and projects and no photo.
func New() *Portfolio {
	return &Portfolio{
		Skills:   SeedSkills(),
		Projects: SeedProjects(),
	}
}

// SetNewSkill replaces the skill draft.
func (p *Portfolio) SetNewSkill(text string) { p.NewSkill = text }

// SetProjectTitle replaces the draft project's title.
func (p *Portfolio) SetProjectTitle(text string) { p.NewProject.Title = text }

// SetProjectDescription replaces the draft project's description.
func (p *Portfolio) SetProjectDescription(text string) { p.NewProject.Description = text }

// AddSkill appends the trimmed skill draft and clears it.
// Whitespace-only drafts are ignored and kept as typed.
func (p *Portfolio) AddSkill() bool {
	skill := strings.TrimSpace(p.NewSkill)
	if skill == "" {
		return false
	}
	p.Skills = append(p.Skills, skill)
	p.NewSkill = ""
	return true
}

// AddProject appends a copy of the project draft and resets it.
// Both fields must be non-empty; they are not trimmed.
func (p *Portfolio) AddProject() bool {
	if p.NewProject.Title == "" || p.NewProject.Description == "" {
		return false
	}
	p.Projects = append(p.Projects, p.NewProject)
	p.NewProject = Project{}
	return true
}

// SetPhoto makes ref the current photo and returns the reference it
// replaced, which the caller owns and should release. A nil ref is ignored.
func (p *Portfolio) SetPhoto(ref *photo.Ref) (previous *photo.Ref) {
	if ref == nil {
		return nil
	}
	previous, p.Photo = p.Photo, ref
	return previous
}

// Snapshot is a read-only copy of the portfolio used for rendering.
type Snapshot struct {
	Photo      *photo.Ref
	Skills     []string
	Projects   []Project
	NewSkill   string
	NewProject Project
}

// Snapshot copies the current state. Later mutations of p do not show up
// in the snapshot and vice versa.
func (p *Portfolio) Snapshot() Snapshot {
	return Snapshot{
		Photo:      p.Photo,
		Skills:     append([]string(nil), p.Skills...),
		Projects:   append([]Project(nil), p.Projects...),
		NewSkill:   p.NewSkill,
		NewProject: p.NewProject,
	}
}
