package refdata

// DefaultRating is the neutral strength used for any team missing from
// the ratings table.
const DefaultRating = 70

// Ratings holds static team strength scores on a 1-100 scale.
var Ratings = map[string]int{
	"KC": 95, "BUF": 92, "SF": 90, "DAL": 89, "PHI": 88,
	"BAL": 87, "CIN": 85, "MIA": 84, "GB": 83, "MIN": 82,
	"DET": 81, "SEA": 80, "LAR": 79, "LAC": 78, "HOU": 77,
	"NYJ": 76, "NE": 75, "PIT": 74, "IND": 73, "JAX": 72,
	"TEN": 71, "NO": 70, "ATL": 69, "TB": 68, "LV": 67,
	"DEN": 66, "CHI": 65, "WAS": 64, "NYG": 63, "CAR": 62,
	"CLE": 61, "ARI": 60,
}
