package models

import "time"

// ActivityLog is an append-only audit record in the logs collection.
type ActivityLog struct {
	ID    string    `json:"id" firestore:"-"`
	Title string    `json:"title" firestore:"title"`
	Place string    `json:"place" firestore:"place"`
	State string    `json:"state" firestore:"state"`
	Date  time.Time `json:"date" firestore:"date"`
	UID   string    `json:"uid" firestore:"uid"`
}

// Signature is an append-only record in the signature collection.
type Signature struct {
	ID   string    `json:"id" firestore:"-"`
	Sign string    `json:"sign" firestore:"sign"`
	Date time.Time `json:"date" firestore:"date"`
}
