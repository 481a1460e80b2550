package db

import "gorm.io/gorm"

// Database hands repositories the shared gorm handle without tying
// them to how the connection was opened.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
