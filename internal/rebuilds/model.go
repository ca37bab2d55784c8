package rebuilds

// DefaultIndustry is applied when the caller leaves industry blank.
const DefaultIndustry = "tech"

// Request carries the resume text and target industry for a rewrite.
type Request struct {
	ResumeText string
	Industry   string
}

// Result holds the three rewritten resumes. Every field is non-empty.
type Result struct {
	ATSVersion      string `json:"atsVersion"`
	ModernVersion   string `json:"modernVersion"`
	IndustryVersion string `json:"industryVersion"`
}

func (r Request) normalized() Request {
	if r.Industry == "" {
		r.Industry = DefaultIndustry
	}
	return r
}
