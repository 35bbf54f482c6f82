package ygoprodeck

import (
	"context"
	"fmt"
	"sort"

	"github.com/meur/duelforge/internal/models"
)

// CurrentBanlist builds the live banlist of a format, labelled with date.
// The returned list has no ID.
func (c *Client) CurrentBanlist(ctx context.Context, format models.Format, date string) (models.Banlist, error) {
	cards, err := c.BanlistCards(ctx, format)
	if err != nil {
		return models.Banlist{}, fmt.Errorf("%s banlist: %w", format, err)
	}
	return BuildBanlist(format, date, cards), nil
}

// BuildBanlist keeps the cards that carry a record for format, most
// restricted first then by name.
func BuildBanlist(format models.Format, date string, cards []models.Card) models.Banlist {
	list := models.Banlist{
		Format: format,
		Name:   fmt.Sprintf("%s - %s", format, date),
		Date:   date,
		Cards:  []models.BannedCard{},
	}

	for _, card := range cards {
		rec, ok := card.Banlist.For(format)
		if !ok {
			continue
		}
		list.Cards = append(list.Cards, models.BannedCard{
			CardName: card.Name,
			CardID:   card.ID,
			Status:   models.NormalizeBanStatus(rec.Status),
		})
	}

	sort.SliceStable(list.Cards, func(i, j int) bool {
		a, b := list.Cards[i], list.Cards[j]
		if a.Status.Copies() != b.Status.Copies() {
			return a.Status.Copies() < b.Status.Copies()
		}
		return a.CardName < b.CardName
	})
	return list
}
