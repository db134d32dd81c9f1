package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PhoneNumber is stored as a single jsonb column, mirroring the
// phone_number object shape the frontend already sends.
type PhoneNumber struct {
	CountryCode int   `json:"country_code"`
	Number      int64 `json:"number"`
}

func (p PhoneNumber) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PhoneNumber) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported phone_number column type %T", value)
	}
}

type Contact struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string      `gorm:"type:text" json:"name"`
	Email       string      `gorm:"type:text" json:"email"`
	PhoneNumber PhoneNumber `gorm:"type:jsonb" json:"phone_number"`
	CreatedBy   uuid.UUID   `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time   `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (c *Contact) TableName() string {
	return "contacts"
}
