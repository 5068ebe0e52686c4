package models

import "time"

// RawItem is one collected document in the shape every collector produces.
// Items are immutable once handed to the analyzer.
type RawItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Score       int       `json:"score"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
	Subreddit   string    `json:"subreddit,omitempty"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source"`
	Keyword     string    `json:"keyword"`
}

type RedditAPIResponse struct {
	Data RedditAPIData `json:"data"`
}

type RedditAPIData struct {
	After    string           `json:"after"`
	Children []RedditAPIChild `json:"children"`
}

type RedditAPIChild struct {
	Data RedditAPIChildData `json:"data"`
}

type RedditAPIChildData struct {
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author_fullname"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Ups         int     `json:"ups"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	ID          string  `json:"id"`
	Permalink   string  `json:"permalink"`
}
