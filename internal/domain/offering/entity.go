// Package offering models the marketing "service" pages shown on the public site.
package offering

import (
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/technology"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type StrategyStep struct {
	Title string `json:"title"`
	Side  Side   `json:"side"`
}

type OfferedItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"servicesOfferedImg"`
}

type Offering struct {
	ID              string
	Title           string
	Description     *string
	Slug            string
	CardImage       *string
	HeroTitle       *string
	HeroDescription *string
	HeroImage       *string
	StrategySteps   []StrategyStep
	ServicesOffered []OfferedItem
	TechnologyIDs   []string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	Technologies []technology.Technology
}

// Images lists every stored image path of o.
func (o Offering) Images() []string {
	var paths []string
	for _, p := range []*string{o.CardImage, o.HeroImage} {
		if p != nil && *p != "" {
			paths = append(paths, *p)
		}
	}
	for _, item := range o.ServicesOffered {
		if item.Image != nil && *item.Image != "" {
			paths = append(paths, *item.Image)
		}
	}
	return paths
}
