package models

import (
	"strconv"
	"time"
)

// TimeTable maps a day index ("0".."5") to its three time slots.
type TimeTable map[string][]bool

// NewTimeTable returns the time-table every new user starts with: six days
// of three unselected slots.
func NewTimeTable() TimeTable {
	tt := make(TimeTable, 6)
	for day := 0; day < 6; day++ {
		tt[strconv.Itoa(day)] = []bool{false, false, false}
	}
	return tt
}

// Settings is the user-editable part of a user document.
type Settings struct {
	NickName             string    `json:"nickName" firestore:"nickName"`
	ModeOfTransportation string    `json:"modeOfTransportation" firestore:"modeOfTransportation"`
	TimeTable            TimeTable `json:"timeTable" firestore:"timeTable"`
	Notification         bool      `json:"notification" firestore:"notification"`
}

// Notification is the per-user notification sub-record.
type Notification struct {
	IsNotify  bool      `json:"isNotify" firestore:"isNotify"`
	ID        string    `json:"id" firestore:"id"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// User represents a document in the users collection. The document ID is the
// Firebase Auth UID.
type User struct {
	ID                string          `json:"id" firestore:"-"`
	CheckinProgramIDs []string        `json:"checkinProgramIds" firestore:"checkinProgramIds"`
	Likes             []string        `json:"likes" firestore:"likes"`
	CreatedAt         time.Time       `json:"createdAt" firestore:"createdAt"`
	Reward            int64           `json:"reward" firestore:"reward"`
	PrevReward        int64           `json:"prevReward" firestore:"prevReward"`
	CurrentPlace      string          `json:"currentPlace" firestore:"currentPlace"`
	Notification      Notification    `json:"notification" firestore:"notification"`
	Settings          Settings        `json:"settings" firestore:"settings"`
	Dev               bool            `json:"dev" firestore:"dev"`
	University        bool            `json:"university" firestore:"university"`
	Form              map[string]bool `json:"form" firestore:"form"`
}
