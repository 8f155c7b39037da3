package usecase

// defaultLabels are the section headings used by the resume template.
func defaultLabels() map[string]string {
	return map[string]string{
		"resume":         "Resume",
		"skills":         "Skills",
		"experience":     "Experience",
		"education":      "Education",
		"projects":       "Projects",
		"certifications": "Certifications",
		"other_details":  "Other Details",
	}
}
