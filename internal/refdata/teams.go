package refdata

import "github.com/sutariaa/fantsay-football-predictor/internal/models"

// Teams lists the 32 NFL clubs.
var Teams = []models.Team{
	{Name: "Arizona Cardinals", Abbr: "ARI"},
	{Name: "Atlanta Falcons", Abbr: "ATL"},
	{Name: "Baltimore Ravens", Abbr: "BAL"},
	{Name: "Buffalo Bills", Abbr: "BUF"},
	{Name: "Carolina Panthers", Abbr: "CAR"},
	{Name: "Chicago Bears", Abbr: "CHI"},
	{Name: "Cincinnati Bengals", Abbr: "CIN"},
	{Name: "Cleveland Browns", Abbr: "CLE"},
	{Name: "Dallas Cowboys", Abbr: "DAL"},
	{Name: "Denver Broncos", Abbr: "DEN"},
	{Name: "Detroit Lions", Abbr: "DET"},
	{Name: "Green Bay Packers", Abbr: "GB"},
	{Name: "Houston Texans", Abbr: "HOU"},
	{Name: "Indianapolis Colts", Abbr: "IND"},
	{Name: "Jacksonville Jaguars", Abbr: "JAX"},
	{Name: "Kansas City Chiefs", Abbr: "KC"},
	{Name: "Las Vegas Raiders", Abbr: "LV"},
	{Name: "Los Angeles Chargers", Abbr: "LAC"},
	{Name: "Los Angeles Rams", Abbr: "LAR"},
	{Name: "Miami Dolphins", Abbr: "MIA"},
	{Name: "Minnesota Vikings", Abbr: "MIN"},
	{Name: "New England Patriots", Abbr: "NE"},
	{Name: "New Orleans Saints", Abbr: "NO"},
	{Name: "New York Giants", Abbr: "NYG"},
	{Name: "New York Jets", Abbr: "NYJ"},
	{Name: "Philadelphia Eagles", Abbr: "PHI"},
	{Name: "Pittsburgh Steelers", Abbr: "PIT"},
	{Name: "San Francisco 49ers", Abbr: "SF"},
	{Name: "Seattle Seahawks", Abbr: "SEA"},
	{Name: "Tampa Bay Buccaneers", Abbr: "TB"},
	{Name: "Tennessee Titans", Abbr: "TEN"},
	{Name: "Washington Commanders", Abbr: "WAS"},
}

// TeamByAbbr returns the team for an abbreviation, or false when the
// abbreviation is unknown.
func TeamByAbbr(abbr string) (models.Team, bool) {
	for _, t := range Teams {
		if t.Abbr == abbr {
			return t, true
		}
	}
	return models.Team{}, false
}
