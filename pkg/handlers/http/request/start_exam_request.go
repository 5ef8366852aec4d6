package request

import (
	"fmt"
	"strings"
)

type StartExamRequest struct {
	Biodata *BiodataRequest `json:"biodata,omitempty"`
}

type BiodataRequest struct {
	FullName    string `json:"fullName"`
	StudentID   string `json:"studentId"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r *StartExamRequest) Validate() error {
	if r.Biodata == nil {
		return nil
	}
	r.Biodata.FullName = strings.TrimSpace(r.Biodata.FullName)
	r.Biodata.StudentID = strings.TrimSpace(r.Biodata.StudentID)
	r.Biodata.PhoneNumber = strings.TrimSpace(r.Biodata.PhoneNumber)
	if len(r.Biodata.FullName) > 200 || len(r.Biodata.StudentID) > 64 || len(r.Biodata.PhoneNumber) > 32 {
		return fmt.Errorf("biodata fields are too long")
	}
	return nil
}
