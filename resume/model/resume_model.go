package model

// Format selects the output document type.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// Present replaces the end date of an ongoing entry.
const Present = "Present"

// Formats lists every supported output format in a stable order.
func Formats() []Format {
	return []Format{FormatDOCX, FormatPDF}
}

// Request is a parsed generate request.
type Request struct {
	Format Format
	Resume ResumeInput
}

// ResumeInput represents the resume payload after field normalization.
// Absent fields are empty strings or nil slices, never sentinel words.
type ResumeInput struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	LinkedIn        string           `json:"linkedin"`
	Summary         string           `json:"summary"`
	AccentColor     string           `json:"accentColor,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Skills          []string         `json:"skills"`
}

// WorkExperience is one entry of the work history.
type WorkExperience struct {
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	DateFrom       string `json:"dateFrom"`
	DateTo         string `json:"dateTo"`
	IsPresent      bool   `json:"isPresent"`
	JobDescription string `json:"jobDescription"`
}

// EndLabel returns Present for ongoing roles and DateTo otherwise.
func (w WorkExperience) EndLabel() string {
	return endLabel(w.IsPresent, w.DateTo)
}

// Education is one entry of the education history.
type Education struct {
	Degree    string `json:"degree"`
	School    string `json:"school"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	IsPresent bool   `json:"isPresent"`
}

// EndLabel returns Present for ongoing studies and DateTo otherwise.
func (e Education) EndLabel() string {
	return endLabel(e.IsPresent, e.DateTo)
}

func endLabel(isPresent bool, dateTo string) string {
	if isPresent {
		return Present
	}
	return dateTo
}
