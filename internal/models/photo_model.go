package models

import "time"

// Photo represents a document in the photos collection.
type Photo struct {
	ID       string    `json:"id" firestore:"-"`
	UID      string    `json:"uid" firestore:"uid"`
	URL      string    `json:"url" firestore:"url"`
	Place    string    `json:"place" firestore:"place"`
	FullPath string    `json:"fullPath" firestore:"fullPath"`
	Fav      int64     `json:"fav" firestore:"fav"`
	Date     time.Time `json:"date" firestore:"date"`
}

// FeedItem is one flattened entry of the photo feed.
type FeedItem struct {
	ID       string `json:"id"`
	NickName string `json:"nickName"`
	Fav      int64  `json:"fav"`
	URL      string `json:"url"`
	Place    string `json:"place"`
	PostDate string `json:"postDate"`
}
