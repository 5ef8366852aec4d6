package migrations

import (
	"github.com/NeuralTrust/TrustProctor/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260101_proctoring_schema",
		Name: "Create users, exams, exam_sessions, proctoring_violations, face_enrollments, certificates",

		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
				`CREATE TABLE IF NOT EXISTS users (
					id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					email          TEXT NOT NULL UNIQUE,
					password_hash  TEXT NOT NULL,
					name           TEXT NOT NULL,
					role           TEXT NOT NULL DEFAULT 'student'
					               CHECK (role IN ('student', 'admin', 'instructor')),
					is_active      BOOLEAN NOT NULL DEFAULT TRUE,
					last_login     TIMESTAMPTZ,
					created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE TABLE IF NOT EXISTS exams (
					id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title          TEXT NOT NULL,
					description    TEXT,
					duration       INTEGER NOT NULL DEFAULT 60,
					passing_score  INTEGER NOT NULL DEFAULT 70
					               CHECK (passing_score BETWEEN 0 AND 100),
					questions      JSONB NOT NULL DEFAULT '[]'::jsonb,
					creator_id     UUID REFERENCES users(id) ON DELETE SET NULL,
					is_active      BOOLEAN NOT NULL DEFAULT TRUE,
					created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE TABLE IF NOT EXISTS exam_sessions (
					id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					exam_id               UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
					user_id               UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					status                TEXT NOT NULL DEFAULT 'in-progress'
					                      CHECK (status IN ('in-progress', 'completed', 'cancelled')),
					answers               JSONB,
					raw_score             DOUBLE PRECISION NOT NULL DEFAULT 0,
					score                 DOUBLE PRECISION NOT NULL DEFAULT 0,
					risk_score            DOUBLE PRECISION NOT NULL DEFAULT 0,
					recommendation        TEXT NOT NULL DEFAULT 'PASS',
					warning_count         INTEGER NOT NULL DEFAULT 0,
					passed                BOOLEAN NOT NULL DEFAULT FALSE,
					certificate_eligible  BOOLEAN NOT NULL DEFAULT FALSE,
					certificate_id        TEXT,
					biodata_full_name     TEXT,
					biodata_student_id    TEXT,
					biodata_phone_number  TEXT,
					device_device         TEXT,
					device_os             TEXT,
					device_browser        TEXT,
					device_locale         TEXT,
					started_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					completed_at          TIMESTAMPTZ,
					updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE INDEX IF NOT EXISTS idx_exam_sessions_user_exam ON exam_sessions(user_id, exam_id);`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_exam_sessions_one_active
					ON exam_sessions(user_id, exam_id) WHERE status = 'in-progress';`,
				`CREATE TABLE IF NOT EXISTS proctoring_violations (
					seq          BIGSERIAL UNIQUE,
					id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					session_id   UUID NOT NULL REFERENCES exam_sessions(id) ON DELETE CASCADE,
					type         TEXT NOT NULL,
					description  TEXT,
					severity     DOUBLE PRECISION NOT NULL CHECK (severity >= 0),
					occurred_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE INDEX IF NOT EXISTS idx_proctoring_violations_session ON proctoring_violations(session_id, seq);`,
				`CREATE TABLE IF NOT EXISTS face_enrollments (
					user_id        UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
					embedding      DOUBLE PRECISION[] NOT NULL,
					box_x          DOUBLE PRECISION,
					box_y          DOUBLE PRECISION,
					box_width      DOUBLE PRECISION,
					box_height     DOUBLE PRECISION,
					registered_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE TABLE IF NOT EXISTS certificates (
					id                TEXT PRIMARY KEY,
					session_id        UUID NOT NULL UNIQUE REFERENCES exam_sessions(id) ON DELETE CASCADE,
					user_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					exam_id           UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
					student_id        TEXT NOT NULL,
					student_name      TEXT NOT NULL,
					exam_title        TEXT NOT NULL,
					score             DOUBLE PRECISION NOT NULL,
					passing_score     INTEGER NOT NULL,
					completed_at      TIMESTAMPTZ NOT NULL,
					issued_at         TIMESTAMPTZ NOT NULL,
					issuer            TEXT NOT NULL,
					hash              TEXT NOT NULL,
					verification_url  TEXT
				);`,
				`CREATE INDEX IF NOT EXISTS idx_certificates_user ON certificates(user_id);`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},

		Down: func(db *gorm.DB) error {
			for _, table := range []string{
				"certificates",
				"face_enrollments",
				"proctoring_violations",
				"exam_sessions",
				"exams",
				"users",
			} {
				if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE;").Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
