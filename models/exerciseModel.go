package models

import "time"

type Exercise struct {
	Username    string    `json:"username" bson:"username"`
	Description string    `json:"description" bson:"description"`
	Duration    int       `json:"duration" bson:"duration"`
	Date        time.Time `json:"date" bson:"date"`
}
