package pricing

import (
	"math"

	"github.com/presswork-as/estimate-api/internal/domain"
)

// Indicative competitor markups over our calculated price
var competitorMarkups = []struct {
	name   string
	markup float64
}{
	{"PrintMaster Pro", 0.10},
	{"QuickPrint Solutions", 0.15},
}

// CompetitorQuotes returns indicative market prices around the calculated
// total, used to position an estimate against typical competitor pricing.
func CompetitorQuotes(totalPrice float64) []domain.CompetitorQuote {
	quotes := make([]domain.CompetitorQuote, 0, len(competitorMarkups))
	for _, c := range competitorMarkups {
		quotes = append(quotes, domain.CompetitorQuote{
			Name:  c.name,
			Price: math.Round(totalPrice*(1+c.markup)*100) / 100,
		})
	}
	return quotes
}
