package types

import "database/sql/driver"

// SocialLinks holds the salon's social handles shown in the footer.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	WhatsApp  string `json:"whatsapp"`
}

func (s SocialLinks) Value() (driver.Value, error) {
	return jsonValue(s)
}

func (s *SocialLinks) Scan(value any) error {
	if value == nil {
		*s = SocialLinks{}
		return nil
	}
	return jsonScan(value, s)
}
