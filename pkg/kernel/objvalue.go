package kernel

import "strings"

type JobTitle string

type Department string

type Location string

type ApplicantName string

type Email string

// IsPlausible checks the address has a local part and a domain around a single @
func (e Email) IsPlausible() bool {
	local, domain, ok := strings.Cut(string(e), "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}

type Phone string

// ResumeURL is the durable URL returned by the resume upload collaborator
type ResumeURL string

func (r ResumeURL) String() string { return string(r) }
