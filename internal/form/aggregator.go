package form

import (
	"maps"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/utils"
	"github.com/rs/zerolog/log"
)

// Aggregator folds section events into the product composite. Arrays only grow through
// events, scalars keep the last value written. It is not safe for concurrent use.
type Aggregator struct {
	conf config.ProductConfig

	productID      string
	title          string
	country        string
	city           string
	startDate      string
	endDate        string
	durationNights string
	durationDays   string
	categories     []string
	mainImg        []domain.ImageRecord
	tickets        []domain.Ticket
	courses        []domain.Course
	mainInfo       string
	extraInfo      string
}

func NewAggregator(conf config.ProductConfig) *Aggregator {
	return &Aggregator{
		conf:       conf,
		categories: []string{},
		mainImg:    []domain.ImageRecord{},
		tickets:    []domain.Ticket{},
		courses:    []domain.Course{},
	}
}

func (a *Aggregator) Apply(ev Event) {
	switch e := ev.(type) {
	case BasicInfoChanged:
		a.applyBasicInfo(e.Info)
	case CategorySelected:
		for _, category := range a.categories {
			if category == e.Name {
				return
			}
		}
		a.categories = append(a.categories, e.Name)
	case MainImagesAdded:
		a.mainImg = append(a.mainImg, e.Images...)
	case MainImageRemoved:
		kept := make([]domain.ImageRecord, 0, len(a.mainImg))
		for _, img := range a.mainImg {
			if img.FileName != e.FileName {
				kept = append(kept, img)
			}
		}
		a.mainImg = kept
	case TicketAdded:
		a.tickets = append(a.tickets, copyTicket(e.Ticket))
	case CourseAdded:
		a.courses = append(a.courses, e.Course)
	case MainInfoChanged:
		a.mainInfo = e.HTML
	case ExtraInfoChanged:
		a.extraInfo = e.HTML
	default:
		log.Warn().Str("event", ev.eventName()).Str("component", "Aggregator").Msg("event is not part of the product")
	}
}

func (a *Aggregator) applyBasicInfo(info BasicInfo) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&a.productID, info.ProductID)
	set(&a.title, info.Title)
	set(&a.country, info.Country)
	set(&a.city, info.City)
	set(&a.startDate, info.StartDate)
	set(&a.endDate, info.EndDate)
	set(&a.durationNights, info.DurationNights)
	set(&a.durationDays, info.DurationDays)
}

// Composite returns a copy of the current product that callers may keep.
func (a *Aggregator) Composite() domain.Product {
	return domain.Product{
		ProductID:  a.productID,
		Category:   append([]string{}, a.categories...),
		Title:      a.title,
		StartPrice: a.conf.DefaultStartPrice,
		Admin:      a.conf.AdminIdentity,
		Location: domain.ProductLocation{
			Country: a.country,
			City:    a.city,
		},
		Duration:  utils.FormatTripDuration(a.durationNights, a.durationDays),
		StartDate: a.startDate,
		EndDate:   a.endDate,
		MainImg:   append([]domain.ImageRecord{}, a.mainImg...),
		Ticket:    copyTickets(a.tickets),
		MainInfo:  a.mainInfo,
		Course:    append([]domain.Course{}, a.courses...),
		ExtraInfo: a.extraInfo,
	}
}

func copyTickets(tickets []domain.Ticket) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		out = append(out, copyTicket(ticket))
	}
	return out
}

// copyTicket detaches the price list and its weekday maps from the caller.
func copyTicket(ticket domain.Ticket) domain.Ticket {
	if ticket.PriceList == nil {
		return ticket
	}

	priceList := make([]domain.PriceRule, len(ticket.PriceList))
	for i, rule := range ticket.PriceList {
		rule.WeekdayPrices = maps.Clone(rule.WeekdayPrices)
		priceList[i] = rule
	}
	ticket.PriceList = priceList
	return ticket
}

// Missing lists the required fields that are still empty. Presence is all that is checked.
func (a *Aggregator) Missing() []string {
	missing := []string{}
	if a.title == "" {
		missing = append(missing, "title")
	}
	if len(a.courses) == 0 {
		missing = append(missing, "course")
	}
	if len(a.tickets) == 0 {
		missing = append(missing, "ticket")
	}
	if a.durationNights == "" {
		missing = append(missing, "durationNights")
	}
	if a.durationDays == "" {
		missing = append(missing, "durationDays")
	}
	return missing
}

func (a *Aggregator) Submittable() bool {
	return len(a.Missing()) == 0
}
