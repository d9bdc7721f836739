package model

import (
	"fmt"
	"strings"
)

// Document represents the résumé payload that drives every rendered section.
type Document struct {
	Header     Header      `json:"header"`
	Summary    string      `json:"summary"`
	Skills     Skills      `json:"skills"`
	Experience []Job       `json:"experience"`
	Education  []Education `json:"education"`
	Projects   []Project   `json:"projects"`
}

// Header captures identity and contact details shown at the top of the page.
type Header struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	ProfileImage string  `json:"profileImage"`
	Contact      Contact `json:"contact"`
}

// Contact is shared by the header and the contact section.
type Contact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Job represents a work history entry.
type Job struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

// Education represents an education entry.
type Education struct {
	School  string `json:"school"`
	Program string `json:"program"`
	Period  string `json:"period"`
	Status  string `json:"status"`
}

// Project represents a project or certification card.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Normalize replaces nil collections with empty ones so that renderers can
// range over every field without nil checks.
func (d *Document) Normalize() {
	if d.Skills == nil {
		d.Skills = Skills{}
	}
	for i := range d.Skills {
		if d.Skills[i].Skills == nil {
			d.Skills[i].Skills = []string{}
		}
	}
	if d.Experience == nil {
		d.Experience = []Job{}
	}
	for i := range d.Experience {
		if d.Experience[i].Responsibilities == nil {
			d.Experience[i].Responsibilities = []string{}
		}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
}

// MissingFields lists header and record fields that are absent or blank.
// Missing fields render as empty text; the list is only reported.
func (d Document) MissingFields() []string {
	var missing []string
	check := func(value, field string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	check(d.Header.Name, "header.name")
	check(d.Header.Title, "header.title")
	check(d.Header.ProfileImage, "header.profileImage")
	check(d.Header.Contact.Email, "header.contact.email")
	check(d.Header.Contact.Phone, "header.contact.phone")
	check(d.Header.Contact.LinkedIn, "header.contact.linkedin")
	check(d.Header.Contact.Portfolio, "header.contact.portfolio")
	check(d.Summary, "summary")

	for i, job := range d.Experience {
		check(job.Title, fmt.Sprintf("experience[%d].title", i))
		check(job.Company, fmt.Sprintf("experience[%d].company", i))
		check(job.Period, fmt.Sprintf("experience[%d].period", i))
	}
	for i, edu := range d.Education {
		check(edu.School, fmt.Sprintf("education[%d].school", i))
		check(edu.Program, fmt.Sprintf("education[%d].program", i))
	}
	for i, project := range d.Projects {
		check(project.Name, fmt.Sprintf("projects[%d].name", i))
	}
	return missing
}
