package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Card is a card record as served by the card database
type Card struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	FrameType string      `json:"frameType,omitempty"`
	Desc      string      `json:"desc"`
	ATK       *int        `json:"atk,omitempty"`
	DEF       *int        `json:"def,omitempty"`
	Level     *int        `json:"level,omitempty"`
	Race      string      `json:"race,omitempty"`
	Attribute string      `json:"attribute,omitempty"`
	Archetype string      `json:"archetype,omitempty"`
	Banlist   BanRecords  `json:"banlist_info,omitempty"`
	Sets      []CardSet   `json:"card_sets,omitempty"`
	Images    []CardImage `json:"card_images,omitempty"`
}

// CardSet is one printing of a card
type CardSet struct {
	SetName    string `json:"set_name"`
	SetCode    string `json:"set_code"`
	RarityCode string `json:"set_rarity_code"`
	Rarity     string `json:"set_rarity"`
	Price      string `json:"set_price"`
}

// CardImage holds artwork URLs for a card
type CardImage struct {
	ID            int    `json:"id"`
	ImageURL      string `json:"image_url"`
	ImageURLSmall string `json:"image_url_small,omitempty"`
}

// ImageURL returns the first artwork URL, or "" when the card has none.
func (c Card) ImageURL() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0].ImageURL
}

// HasStats reports whether the card carries both ATK and DEF.
func (c Card) HasStats() bool {
	return c.ATK != nil && c.DEF != nil
}

// BanRecord is the status of a card on one format's banlist
type BanRecord struct {
	Format Format `json:"format"`
	Status string `json:"status"`
}

// BanRecords decodes both the card database object form
// ({"ban_tcg": "Banned", "ban_ocg": "Limited"}) and a plain list of records.
type BanRecords []BanRecord

// For returns the record for a format, if any.
func (b BanRecords) For(f Format) (BanRecord, bool) {
	for _, r := range b {
		if r.Format == f {
			return r, true
		}
	}
	return BanRecord{}, false
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BanRecords) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = nil
		return nil
	}

	if data[0] == '[' {
		var list []BanRecord
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decode ban records: %w", err)
		}
		*b = list
		return nil
	}

	var obj struct {
		TCG string `json:"ban_tcg"`
		OCG string `json:"ban_ocg"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode ban records: %w", err)
	}

	var records BanRecords
	if obj.TCG != "" {
		records = append(records, BanRecord{Format: FormatTCG, Status: obj.TCG})
	}
	if obj.OCG != "" {
		records = append(records, BanRecord{Format: FormatOCG, Status: obj.OCG})
	}
	*b = records
	return nil
}
