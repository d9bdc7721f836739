package render

const navbarClass = "navbar navbar-expand-lg navbar-dark bg-dark fixed-top"

// SectionClass centralizes the Bootstrap classes of each section element.
var SectionClass = map[string]string{
	SectionHome:       "bg-primary text-white py-5 mt-5",
	SectionAbout:      "py-5",
	SectionSkills:     "py-5 bg-light",
	SectionExperience: "py-5",
	SectionEducation:  "py-5 bg-light",
	SectionProjects:   "py-5",
	SectionContact:    "py-5 bg-dark text-white",
}

const errorViewClass = "container mt-5 load-error"
