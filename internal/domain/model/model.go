package model

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100"`
	Username     string `gorm:"size:50;uniqueIndex"`
	Email        string `gorm:"size:100;uniqueIndex"`
	PasswordHash string `gorm:"size:128"`
	Status       string `gorm:"size:20;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Video struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `json:"description"`
	URL         string    `gorm:"size:500" json:"url"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Playlist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `json:"description"`
	URLThumb    string    `gorm:"size:500" json:"url_thumb"`
	Price       *float64  `json:"price"`
	VideoCount  int       `gorm:"default:0" json:"video_count"`
	UserID      uint      `json:"user_id"`
	Videos      []Video   `gorm:"many2many:playlist_videos" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Formation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Lecture struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccessToken is what a successful login hands back: a signed bearer
// credential and the instant it stops being valid.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

func (v Video) OwnerID() uint     { return v.UserID }
func (p Playlist) OwnerID() uint  { return p.UserID }
func (f Formation) OwnerID() uint { return f.UserID }
func (l Lecture) OwnerID() uint   { return l.UserID }
