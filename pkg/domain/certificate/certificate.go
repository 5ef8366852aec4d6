package certificate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const DefaultIssuer = "AI Exam Platform"

// Data is the hashed content of a certificate. Field order defines the canonical JSON encoding.
type Data struct {
	StudentID     string    `json:"studentId"`
	StudentName   string    `json:"studentName"`
	ExamTitle     string    `json:"examTitle"`
	Score         float64   `json:"score"`
	PassingScore  int       `json:"passingScore"`
	CompletedAt   time.Time `json:"completedAt"`
	IssuedAt      time.Time `json:"issuedAt"`
	Issuer        string    `json:"issuer"`
	CertificateID string    `json:"certificateId"`
}

type Certificate struct {
	ID              string    `json:"certificate_id" gorm:"primaryKey;type:text"`
	SessionID       uuid.UUID `json:"session_id" gorm:"type:uuid;uniqueIndex;not null"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	ExamID          uuid.UUID `json:"exam_id" gorm:"type:uuid;not null"`
	StudentID       string    `json:"student_id"`
	StudentName     string    `json:"student_name"`
	ExamTitle       string    `json:"exam_title"`
	Score           float64   `json:"score"`
	PassingScore    int       `json:"passing_score"`
	CompletedAt     time.Time `json:"completed_at"`
	IssuedAt        time.Time `json:"issued_at"`
	Issuer          string    `json:"issuer"`
	Hash            string    `json:"hash" gorm:"not null"`
	VerificationURL string    `json:"verification_url"`
}

func (c *Certificate) TableName() string {
	return "certificates"
}

func (c *Certificate) Data() Data {
	return Data{
		StudentID:     c.StudentID,
		StudentName:   c.StudentName,
		ExamTitle:     c.ExamTitle,
		Score:         c.Score,
		PassingScore:  c.PassingScore,
		CompletedAt:   c.CompletedAt.UTC(),
		IssuedAt:      c.IssuedAt.UTC(),
		Issuer:        c.Issuer,
		CertificateID: c.ID,
	}
}

// Hash is the hex SHA-256 of the canonical JSON encoding of d.
func (d Data) Hash() (string, error) {
	canonical, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
