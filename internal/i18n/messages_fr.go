package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.French

	message.SetString(lang, KeyEmptyQuery, "Veuillez entrer un nom de carte")
	message.SetString(lang, KeyNoCardsFound, "Aucune carte trouvée pour %q")
	message.SetString(lang, KeyNoCards, "Aucune carte disponible actuellement")
	message.SetString(lang, KeySearchFailed, "Erreur lors de la recherche : %v")
	message.SetString(lang, KeyNoDecks, "Aucun deck trouvé contenant cette carte")
	message.SetString(lang, KeyDecksFailed, "Erreur lors du chargement des decks")
	message.Set(lang, KeyResultCount, plural.Selectf(1, "%d",
		"=1", "%d carte trouvée",
		"other", "%d cartes trouvées",
	))

	// Challenge details
	message.SetString(lang, "Participants", "Participants")
	message.SetString(lang, "Cost", "Coût")
	message.SetString(lang, "Accessibility", "Accessibilité")
	message.SetString(lang, "Difficulty", "Difficulté")

	// Challenge categories
	message.SetString(lang, "Education", "Éducation")
	message.SetString(lang, "Recreational", "Loisir")
	message.SetString(lang, "Social", "Social")
	message.SetString(lang, "DIY", "DIY")
	message.SetString(lang, "Charity", "Charité")
	message.SetString(lang, "Cooking", "Cuisine")
	message.SetString(lang, "Relaxation", "Relaxation")
	message.SetString(lang, "Music", "Musique")
	message.SetString(lang, "Busywork", "Travail")
	message.SetString(lang, "Sport", "Sport")
	message.SetString(lang, "Reading", "Lecture")
	message.SetString(lang, "Travel", "Voyage")
	message.SetString(lang, "Health", "Santé")
	message.SetString(lang, "Photography", "Photographie")
	message.SetString(lang, "Painting", "Peinture")
	message.SetString(lang, "Writing", "Écriture")
	message.SetString(lang, "Gaming", "Gaming")
	message.SetString(lang, "Gardening", "Jardinage")
	message.SetString(lang, "Dancing", "Danse")
	message.SetString(lang, "Volunteering", "Bénévolat")
	message.SetString(lang, "Crafting", "Artisanat")
	message.SetString(lang, "Movies", "Films")
	message.SetString(lang, "Coding", "Programmation")
	message.SetString(lang, "Learning", "Apprentissage")
	message.SetString(lang, "Esports", "Esport")
	message.SetString(lang, "Tech", "Tech")
	message.SetString(lang, "Anime", "Anime")
	message.SetString(lang, "Cybersecurity", "Cybersécurité")
	message.SetString(lang, "Retro", "Rétro")
	message.SetString(lang, "Virtual reality", "Réalité virtuelle")
}
