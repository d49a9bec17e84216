package service

import (
	"net/url"
	"strings"

	"breaking_news/internal/domain"
)

// ReadURL builds the deep link back to the read server for one article
// delivered to one user.
func ReadURL(base, feedID, articleID, userID string) string {
	q := url.Values{}
	q.Set("feedId", feedID)
	q.Set("articleId", articleID)
	q.Set("userId", userID)
	return strings.TrimRight(base, "/") + "/read?" + q.Encode()
}

func NewAlertMessage(user domain.User, text string) domain.OutgoingMessage {
	return domain.OutgoingMessage{
		UserID: user.ID,
		Type:   domain.MessageAlert,
		Text:   text,
	}
}

func NewArticleCard(user domain.User, article domain.Article, readURL, readMoreLabel string) domain.OutgoingMessage {
	card := &domain.Card{
		Title: article.Title,
		URL:   readURL,
		Options: []domain.CardOption{
			{Label: readMoreLabel, URL: readURL},
		},
	}
	if article.Description != nil {
		card.Description = *article.Description
	}
	if article.ImageURL != nil {
		card.ImageURL = *article.ImageURL
	}

	return domain.OutgoingMessage{
		UserID: user.ID,
		Type:   domain.MessageCard,
		Card:   card,
	}
}
