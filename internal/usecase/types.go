package usecase

import (
	"net/url"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// NewResumeRequest builds a sanitized ResumeRequest from submitted form
// values. Parallel array fields are zipped by index and truncated to the
// shortest array.
func NewResumeRequest(form url.Values) *domain.ResumeRequest {
	req := &domain.ResumeRequest{
		Name:           model.Sanitize(form.Get("name")),
		Email:          model.Sanitize(form.Get("email")),
		Phone:          model.Sanitize(form.Get("phone")),
		Location:       model.Sanitize(form.Get("location")),
		LinkedIn:       model.Sanitize(form.Get("linkedin")),
		Skills:         model.Sanitize(form.Get("skills")),
		Projects:       model.Sanitize(form.Get("projects")),
		Certifications: model.Sanitize(form.Get("certifications")),
		OtherDetails:   model.Sanitize(form.Get("other_details")),
	}

	degrees := model.SanitizeAll(form["degree[]"])
	institutions := model.SanitizeAll(form["institution[]"])
	years := model.SanitizeAll(form["year_of_passing[]"])
	for i := 0; i < shortest(degrees, institutions, years); i++ {
		req.Education = append(req.Education, domain.Education{
			Degree:        degrees[i],
			Institution:   institutions[i],
			YearOfPassing: years[i],
		})
	}

	titles := model.SanitizeAll(form["job_title[]"])
	companies := model.SanitizeAll(form["company[]"])
	starts := model.SanitizeAll(form["exp_start[]"])
	ends := model.SanitizeAll(form["exp_end[]"])
	descs := model.SanitizeAll(form["experience_desc[]"])
	for i := 0; i < shortest(titles, companies, starts, ends, descs); i++ {
		req.Experience = append(req.Experience, domain.Experience{
			JobTitle:    titles[i],
			Company:     companies[i],
			Start:       starts[i],
			End:         ends[i],
			Description: descs[i],
		})
	}

	return req
}

// SanitizeRequest re-applies the sanitizer to a request that did not come
// through NewResumeRequest (e.g. a JSON document).
func SanitizeRequest(in *domain.ResumeRequest) *domain.ResumeRequest {
	out := &domain.ResumeRequest{
		Name:           model.Sanitize(in.Name),
		Email:          model.Sanitize(in.Email),
		Phone:          model.Sanitize(in.Phone),
		Location:       model.Sanitize(in.Location),
		LinkedIn:       model.Sanitize(in.LinkedIn),
		Skills:         model.Sanitize(in.Skills),
		Projects:       model.Sanitize(in.Projects),
		Certifications: model.Sanitize(in.Certifications),
		OtherDetails:   model.Sanitize(in.OtherDetails),
	}
	for _, e := range in.Education {
		out.Education = append(out.Education, domain.Education{
			Degree:        model.Sanitize(e.Degree),
			Institution:   model.Sanitize(e.Institution),
			YearOfPassing: model.Sanitize(e.YearOfPassing),
		})
	}
	for _, e := range in.Experience {
		out.Experience = append(out.Experience, domain.Experience{
			JobTitle:    model.Sanitize(e.JobTitle),
			Company:     model.Sanitize(e.Company),
			Start:       model.Sanitize(e.Start),
			End:         model.Sanitize(e.End),
			Description: model.Sanitize(e.Description),
		})
	}
	return out
}

// Validate reports the required fields that are empty.
func Validate(req *domain.ResumeRequest) error {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// DownloadName derives the attachment filename from a sanitized name.
func DownloadName(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "\"", "")
	return r.Replace(name) + "_resume.pdf"
}

func shortest(cols ...[]string) int {
	if len(cols) == 0 {
		return 0
	}
	n := len(cols[0])
	for _, c := range cols[1:] {
		if len(c) < n {
			n = len(c)
		}
	}
	return n
}
