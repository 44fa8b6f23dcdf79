package refdata

import "github.com/sutariaa/fantsay-football-predictor/internal/models"

// Schedule2025 is the full 18-week 2025 regular-season schedule per
// team, bye weeks included. Static reference data; the predictor
// consumes it as-is and an external feed may replace it wholesale.
var Schedule2025 = map[string][]models.ScheduledGame{
	"ARI": {
		{Week: 1, Opponent: "NO", Home: false},
		{Week: 2, Opponent: "CAR", Home: true},
		{Week: 3, Opponent: "SF", Home: false},
		{Week: 4, Opponent: "SEA", Home: true},
		{Week: 5, Opponent: "TEN", Home: true},
		{Week: 6, Opponent: "IND", Home: true},
		{Week: 7, Opponent: "GB", Home: false},
		{Week: 8, Opponent: "BYE", Home: false},
		{Week: 9, Opponent: "DAL", Home: false},
		{Week: 10, Opponent: "SEA", Home: false},
		{Week: 11, Opponent: "SF", Home: true},
		{Week: 12, Opponent: "JAX", Home: true},
		{Week: 13, Opponent: "TB", Home: false},
		{Week: 14, Opponent: "LAR", Home: false},
		{Week: 15, Opponent: "HOU", Home: false},
		{Week: 16, Opponent: "ATL", Home: true},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "LAR", Home: false},
	},
	"ATL": {
		{Week: 1, Opponent: "TB", Home: true},
		{Week: 2, Opponent: "MIN", Home: false},
		{Week: 3, Opponent: "CAR", Home: true},
		{Week: 4, Opponent: "WAS", Home: false},
		{Week: 5, Opponent: "BYE", Home: false},
		{Week: 6, Opponent: "BUF", Home: false},
		{Week: 7, Opponent: "SF", Home: false},
		{Week: 8, Opponent: "MIA", Home: true},
		{Week: 9, Opponent: "NE", Home: false},
		{Week: 10, Opponent: "IND", Home: false},
		{Week: 11, Opponent: "CAR", Home: false},
		{Week: 12, Opponent: "NO", Home: false},
		{Week: 13, Opponent: "BYE", Home: false},
		{Week: 14, Opponent: "SEA", Home: true},
		{Week: 15, Opponent: "TB", Home: false},
		{Week: 16, Opponent: "ARI", Home: false},
		{Week: 17, Opponent: "LAR", Home: false},
		{Week: 18, Opponent: "NO", Home: true},
	},
	"BAL": {
		{Week: 1, Opponent: "BUF", Home: false},
		{Week: 2, Opponent: "CLE", Home: true},
		{Week: 3, Opponent: "DET", Home: false},
		{Week: 4, Opponent: "KC", Home: false},
		{Week: 5, Opponent: "HOU", Home: false},
		{Week: 6, Opponent: "LAR", Home: false},
		{Week: 7, Opponent: "BYE", Home: false},
		{Week: 8, Opponent: "CHI", Home: true},
		{Week: 9, Opponent: "MIA", Home: false},
		{Week: 10, Opponent: "MIN", Home: true},
		{Week: 11, Opponent: "CLE", Home: false},
		{Week: 12, Opponent: "NYJ", Home: true},
		{Week: 13, Opponent: "CIN", Home: true},
		{Week: 14, Opponent: "PIT", Home: true},
		{Week: 15, Opponent: "CIN", Home: false},
		{Week: 16, Opponent: "NE", Home: true},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "PIT", Home: false},
	},
	"BUF": {
		{Week: 1, Opponent: "BAL", Home: true},
		{Week: 2, Opponent: "NYJ", Home: false},
		{Week: 3, Opponent: "MIA", Home: true},
		{Week: 4, Opponent: "NO", Home: false},
		{Week: 5, Opponent: "NE", Home: false},
		{Week: 6, Opponent: "ATL", Home: true},
		{Week: 7, Opponent: "BYE", Home: false},
		{Week: 8, Opponent: "CAR", Home: true},
		{Week: 9, Opponent: "KC", Home: false},
		{Week: 10, Opponent: "MIA", Home: true},
		{Week: 11, Opponent: "TB", Home: true},
		{Week: 12, Opponent: "HOU", Home: false},
		{Week: 13, Opponent: "PIT", Home: false},
		{Week: 14, Opponent: "CIN", Home: false},
		{Week: 15, Opponent: "NE", Home: true},
		{Week: 16, Opponent: "CLE", Home: true},
		{Week: 17, Opponent: "PHI", Home: false},
		{Week: 18, Opponent: "NYJ", Home: false},
	},
	"CAR": {
		{Week: 1, Opponent: "JAX", Home: false},
		{Week: 2, Opponent: "ARI", Home: false},
		{Week: 3, Opponent: "ATL", Home: false},
		{Week: 4, Opponent: "NE", Home: false},
		{Week: 5, Opponent: "MIA", Home: false},
		{Week: 6, Opponent: "DAL", Home: false},
		{Week: 7, Opponent: "NYJ", Home: false},
		{Week: 8, Opponent: "BUF", Home: false},
		{Week: 9, Opponent: "GB", Home: false},
		{Week: 10, Opponent: "NO", Home: true},
		{Week: 11, Opponent: "ATL", Home: true},
		{Week: 12, Opponent: "SF", Home: false},
		{Week: 13, Opponent: "LAR", Home: false},
		{Week: 14, Opponent: "BYE", Home: false},
		{Week: 15, Opponent: "NO", Home: false},
		{Week: 16, Opponent: "TB", Home: false},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "TB", Home: false},
	},
	"CHI": {
		{Week: 1, Opponent: "MIN", Home: true},
		{Week: 2, Opponent: "DET", Home: false},
		{Week: 3, Opponent: "DAL", Home: false},
		{Week: 4, Opponent: "LV", Home: false},
		{Week: 5, Opponent: "BYE", Home: false},
		{Week: 6, Opponent: "WAS", Home: false},
		{Week: 7, Opponent: "NO", Home: false},
		{Week: 8, Opponent: "BAL", Home: false},
		{Week: 9, Opponent: "CIN", Home: false},
		{Week: 10, Opponent: "NYG", Home: false},
		{Week: 11, Opponent: "MIN", Home: false},
		{Week: 12, Opponent: "PIT", Home: false},
		{Week: 13, Opponent: "PHI", Home: false},
		{Week: 14, Opponent: "GB", Home: false},
		{Week: 15, Opponent: "CLE", Home: false},
		{Week: 16, Opponent: "GB", Home: true},
		{Week: 17, Opponent: "SF", Home: false},
		{Week: 18, Opponent: "DET", Home: false},
	},
	"CIN": {
		{Week: 1, Opponent: "CLE", Home: false},
		{Week: 2, Opponent: "JAX", Home: true},
		{Week: 3, Opponent: "MIN", Home: false},
		{Week: 4, Opponent: "DEN", Home: false},
		{Week: 5, Opponent: "DET", Home: false},
		{Week: 6, Opponent: "GB", Home: false},
		{Week: 7, Opponent: "PIT", Home: true},
		{Week: 8, Opponent: "NYJ", Home: false},
		{Week: 9, Opponent: "CHI", Home: true},
		{Week: 10, Opponent: "BYE", Home: false},
		{Week: 11, Opponent: "PIT", Home: false},
		{Week: 12, Opponent: "NE", Home: false},
		{Week: 13, Opponent: "BAL", Home: false},
		{Week: 14, Opponent: "BUF", Home: true},
		{Week: 15, Opponent: "BAL", Home: true},
		{Week: 16, Opponent: "MIA", Home: false},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "CLE", Home: true},
	},
	"CLE": {
		{Week: 1, Opponent: "CIN", Home: true},
		{Week: 2, Opponent: "BAL", Home: false},
		{Week: 3, Opponent: "GB", Home: false},
		{Week: 4, Opponent: "DET", Home: false},
		{Week: 5, Opponent: "MIN", Home: true},
		{Week: 6, Opponent: "PIT", Home: false},
		{Week: 7, Opponent: "MIA", Home: true},
		{Week: 8, Opponent: "NE", Home: true},
		{Week: 9, Opponent: "BYE", Home: false},
		{Week: 10, Opponent: "NYJ", Home: false},
		{Week: 11, Opponent: "BAL", Home: true},
		{Week: 12, Opponent: "LV", Home: true},
		{Week: 13, Opponent: "SF", Home: false},
		{Week: 14, Opponent: "TEN", Home: false},
		{Week: 15, Opponent: "CHI", Home: true},
		{Week: 16, Opponent: "BUF", Home: false},
		{Week: 17, Opponent: "PIT", Home: false},
		{Week: 18, Opponent: "CIN", Home: false},
	},
	"DAL": {
		{Week: 1, Opponent: "PHI", Home: false},
		{Week: 2, Opponent: "NYG", Home: true},
		{Week: 3, Opponent: "CHI", Home: true},
		{Week: 4, Opponent: "GB", Home: false},
		{Week: 5, Opponent: "NYJ", Home: true},
		{Week: 6, Opponent: "CAR", Home: true},
		{Week: 7, Opponent: "WAS", Home: false},
		{Week: 8, Opponent: "DEN", Home: false},
		{Week: 9, Opponent: "ARI", Home: true},
		{Week: 10, Opponent: "BYE", Home: false},
		{Week: 11, Opponent: "LV", Home: false},
		{Week: 12, Opponent: "PHI", Home: false},
		{Week: 13, Opponent: "KC", Home: false},
		{Week: 14, Opponent: "DET", Home: false},
		{Week: 15, Opponent: "MIN", Home: false},
		{Week: 16, Opponent: "LAC", Home: true},
		{Week: 17, Opponent: "WAS", Home: false},
		{Week: 18, Opponent: "NYG", Home: false},
	},
	"DEN": {
		{Week: 1, Opponent: "TEN", Home: true},
		{Week: 2, Opponent: "IND", Home: false},
		{Week: 3, Opponent: "LAC", Home: false},
		{Week: 4, Opponent: "CIN", Home: true},
		{Week: 5, Opponent: "PHI", Home: false},
		{Week: 6, Opponent: "NYJ", Home: true},
		{Week: 7, Opponent: "NYG", Home: false},
		{Week: 8, Opponent: "DAL", Home: true},
		{Week: 9, Opponent: "HOU", Home: false},
		{Week: 10, Opponent: "LV", Home: false},
		{Week: 11, Opponent: "KC", Home: false},
		{Week: 12, Opponent: "BYE", Home: false},
		{Week: 13, Opponent: "WAS", Home: false},
		{Week: 14, Opponent: "LV", Home: true},
		{Week: 15, Opponent: "GB", Home: false},
		{Week: 16, Opponent: "JAX", Home: false},
		{Week: 17, Opponent: "KC", Home: true},
		{Week: 18, Opponent: "LAC", Home: false},
	},
	"DET": {
		{Week: 1, Opponent: "GB", Home: false},
		{Week: 2, Opponent: "CHI", Home: true},
		{Week: 3, Opponent: "BAL", Home: true},
		{Week: 4, Opponent: "CLE", Home: true},
		{Week: 5, Opponent: "CIN", Home: true},
		{Week: 6, Opponent: "KC", Home: false},
		{Week: 7, Opponent: "TB", Home: false},
		{Week: 8, Opponent: "BYE", Home: false},
		{Week: 9, Opponent: "MIN", Home: false},
		{Week: 10, Opponent: "WAS", Home: false},
		{Week: 11, Opponent: "PHI", Home: false},
		{Week: 12, Opponent: "NYG", Home: false},
		{Week: 13, Opponent: "GB", Home: false},
		{Week: 14, Opponent: "DAL", Home: true},
		{Week: 15, Opponent: "LAR", Home: true},
		{Week: 16, Opponent: "PIT", Home: false},
		{Week: 17, Opponent: "MIN", Home: true},
		{Week: 18, Opponent: "CHI", Home: true},
	},
	"GB": {
		{Week: 1, Opponent: "DET", Home: true},
		{Week: 2, Opponent: "WAS", Home: false},
		{Week: 3, Opponent: "CLE", Home: true},
		{Week: 4, Opponent: "DAL", Home: true},
		{Week: 5, Opponent: "BYE", Home: false},
		{Week: 6, Opponent: "CIN", Home: true},
		{Week: 7, Opponent: "ARI", Home: true},
		{Week: 8, Opponent: "PIT", Home: false},
		{Week: 9, Opponent: "CAR", Home: true},
		{Week: 10, Opponent: "PHI", Home: false},
		{Week: 11, Opponent: "NYG", Home: false},
		{Week: 12, Opponent: "MIN", Home: false},
		{Week: 13, Opponent: "DET", Home: true},
		{Week: 14, Opponent: "CHI", Home: true},
		{Week: 15, Opponent: "DEN", Home: true},
		{Week: 16, Opponent: "CHI", Home: false},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "MIN", Home: false},
	},
	"HOU": {
		{Week: 1, Opponent: "LAR", Home: false},
		{Week: 2, Opponent: "TB", Home: true},
		{Week: 3, Opponent: "JAX", Home: false},
		{Week: 4, Opponent: "TEN", Home: false},
		{Week: 5, Opponent: "BAL", Home: true},
		{Week: 6, Opponent: "BYE", Home: false},
		{Week: 7, Opponent: "SEA", Home: false},
		{Week: 8, Opponent: "SF", Home: false},
		{Week: 9, Opponent: "DEN", Home: true},
		{Week: 10, Opponent: "JAX", Home: false},
		{Week: 11, Opponent: "TEN", Home: false},
		{Week: 12, Opponent: "BUF", Home: true},
		{Week: 13, Opponent: "BYE", Home: false},
		{Week: 14, Opponent: "KC", Home: false},
		{Week: 15, Opponent: "ARI", Home: true},
		{Week: 16, Opponent: "LV", Home: false},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "IND", Home: false},
	},
	"IND": {
		{Week: 1, Opponent: "MIA", Home: true},
		{Week: 2, Opponent: "DEN", Home: true},
		{Week: 3, Opponent: "TEN", Home: false},
		{Week: 4, Opponent: "LAR", Home: false},
		{Week: 5, Opponent: "LV", Home: false},
		{Week: 6, Opponent: "ARI", Home: false},
		{Week: 7, Opponent: "LAC", Home: false},
		{Week: 8, Opponent: "TEN", Home: false},
		{Week: 9, Opponent: "PIT", Home: false},
		{Week: 10, Opponent: "ATL", Home: true},
		{Week: 11, Opponent: "BYE", Home: false},
		{Week: 12, Opponent: "KC", Home: false},
		{Week: 13, Opponent: "HOU", Home: false},
		{Week: 14, Opponent: "JAX", Home: false},
		{Week: 15, Opponent: "BYE", Home: false},
		{Week: 16, Opponent: "SF", Home: false},
		{Week: 17, Opponent: "JAX", Home: false},
		{Week: 18, Opponent: "HOU", Home: true},
	},
	"JAX": {
		{Week: 1, Opponent: "CAR", Home: true},
		{Week: 2, Opponent: "CIN", Home: false},
		{Week: 3, Opponent: "HOU", Home: true},
		{Week: 4, Opponent: "SF", Home: false},
		{Week: 5, Opponent: "KC", Home: false},
		{Week: 6, Opponent: "SEA", Home: false},
		{Week: 7, Opponent: "LAR", Home: false},
		{Week: 8, Opponent: "BYE", Home: false},
		{Week: 9, Opponent: "LV", Home: false},
		{Week: 10, Opponent: "HOU", Home: true},
		{Week: 11, Opponent: "LAC", Home: false},
		{Week: 12, Opponent: "ARI", Home: false},
		{Week: 13, Opponent: "TEN", Home: false},
		{Week: 14, Opponent: "IND", Home: true},
		{Week: 15, Opponent: "NYJ", Home: false},
		{Week: 16, Opponent: "DEN", Home: true},
		{Week: 17, Opponent: "IND", Home: true},
		{Week: 18, Opponent: "TEN", Home: false},
	},
	"KC": {
		{Week: 1, Opponent: "LAC", Home: false},
		{Week: 2, Opponent: "PHI", Home: false},
		{Week: 3, Opponent: "NYG", Home: false},
		{Week: 4, Opponent: "BAL", Home: true},
		{Week: 5, Opponent: "JAX", Home: true},
		{Week: 6, Opponent: "DET", Home: true},
		{Week: 7, Opponent: "LV", Home: false},
		{Week: 8, Opponent: "WAS", Home: false},
		{Week: 9, Opponent: "BUF", Home: true},
		{Week: 10, Opponent: "BYE", Home: false},
		{Week: 11, Opponent: "DEN", Home: true},
		{Week: 12, Opponent: "IND", Home: true},
		{Week: 13, Opponent: "DAL", Home: true},
		{Week: 14, Opponent: "HOU", Home: true},
		{Week: 15, Opponent: "LAC", Home: true},
		{Week: 16, Opponent: "TEN", Home: false},
		{Week: 17, Opponent: "DEN", Home: false},
		{Week: 18, Opponent: "LV", Home: false},
	},
	"LAC": {
		{Week: 1, Opponent: "KC", Home: true},
		{Week: 2, Opponent: "LV", Home: false},
		{Week: 3, Opponent: "DEN", Home: true},
		{Week: 4, Opponent: "NYG", Home: false},
		{Week: 5, Opponent: "WAS", Home: false},
		{Week: 6, Opponent: "MIA", Home: false},
		{Week: 7, Opponent: "IND", Home: true},
		{Week: 8, Opponent: "MIN", Home: false},
		{Week: 9, Opponent: "TEN", Home: false},
		{Week: 10, Opponent: "PIT", Home: false},
		{Week: 11, Opponent: "JAX", Home: true},
		{Week: 12, Opponent: "BYE", Home: false},
		{Week: 13, Opponent: "LV", Home: false},
		{Week: 14, Opponent: "BYE", Home: false},
		{Week: 15, Opponent: "KC", Home: false},
		{Week: 16, Opponent: "DAL", Home: false},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "DEN", Home: true},
	},
	"LAR": {
		{Week: 1, Opponent: "HOU", Home: true},
		{Week: 2, Opponent: "TEN", Home: false},
		{Week: 3, Opponent: "PHI", Home: false},
		{Week: 4, Opponent: "IND", Home: true},
		{Week: 5, Opponent: "SF", Home: true},
		{Week: 6, Opponent: "BAL", Home: true},
		{Week: 7, Opponent: "JAX", Home: true},
		{Week: 8, Opponent: "BYE", Home: false},
		{Week: 9, Opponent: "NO", Home: false},
		{Week: 10, Opponent: "SF", Home: false},
		{Week: 11, Opponent: "SEA", Home: false},
		{Week: 12, Opponent: "TB", Home: false},
		{Week: 13, Opponent: "CAR", Home: true},
		{Week: 14, Opponent: "ARI", Home: true},
		{Week: 15, Opponent: "DET", Home: false},
		{Week: 16, Opponent: "SEA", Home: false},
		{Week: 17, Opponent: "ATL", Home: true},
		{Week: 18, Opponent: "ARI", Home: true},
	},
	"LV": {
		{Week: 1, Opponent: "NE", Home: false},
		{Week: 2, Opponent: "LAC", Home: true},
		{Week: 3, Opponent: "WAS", Home: false},
		{Week: 4, Opponent: "CHI", Home: true},
		{Week: 5, Opponent: "IND", Home: true},
		{Week: 6, Opponent: "TEN", Home: false},
		{Week: 7, Opponent: "KC", Home: true},
		{Week: 8, Opponent: "BYE", Home: false},
		{Week: 9, Opponent: "JAX", Home: true},
		{Week: 10, Opponent: "DEN", Home: true},
		{Week: 11, Opponent: "DAL", Home: true},
		{Week: 12, Opponent: "CLE", Home: false},
		{Week: 13, Opponent: "LAC", Home: true},
		{Week: 14, Opponent: "DEN", Home: false},
		{Week: 15, Opponent: "PHI", Home: false},
		{Week: 16, Opponent: "HOU", Home: true},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "KC", Home: true},
	},
	"MIA": {
		{Week: 1, Opponent: "IND", Home: false},
		{Week: 2, Opponent: "NE", Home: false},
		{Week: 3, Opponent: "BUF", Home: false},
		{Week: 4, Opponent: "NYJ", Home: false},
		{Week: 5, Opponent: "CAR", Home: true},
		{Week: 6, Opponent: "LAC", Home: true},
		{Week: 7, Opponent: "CLE", Home: false},
		{Week: 8, Opponent: "ATL", Home: false},
		{Week: 9, Opponent: "BAL", Home: true},
		{Week: 10, Opponent: "BUF", Home: false},
		{Week: 11, Opponent: "WAS", Home: true},
		{Week: 12, Opponent: "BYE", Home: false},
		{Week: 13, Opponent: "NO", Home: false},
		{Week: 14, Opponent: "NYJ", Home: true},
		{Week: 15, Opponent: "PIT", Home: true},
		{Week: 16, Opponent: "CIN", Home: true},
		{Week: 17, Opponent: "TB", Home: false},
		{Week: 18, Opponent: "NE", Home: false},
	},
	"MIN": {
		{Week: 1, Opponent: "CHI", Home: false},
		{Week: 2, Opponent: "ATL", Home: true},
		{Week: 3, Opponent: "CIN", Home: true},
		{Week: 4, Opponent: "PIT", Home: true},
		{Week: 5, Opponent: "CLE", Home: false},
		{Week: 6, Opponent: "BYE", Home: false},
		{Week: 7, Opponent: "PHI", Home: false},
		{Week: 8, Opponent: "LAC", Home: true},
		{Week: 9, Opponent: "DET", Home: true},
		{Week: 10, Opponent: "BAL", Home: false},
		{Week: 11, Opponent: "CHI", Home: true},
		{Week: 12, Opponent: "GB", Home: true},
		{Week: 13, Opponent: "SEA", Home: false},
		{Week: 14, Opponent: "WAS", Home: false},
		{Week: 15, Opponent: "DAL", Home: true},
		{Week: 16, Opponent: "NYG", Home: false},
		{Week: 17, Opponent: "DET", Home: false},
		{Week: 18, Opponent: "GB", Home: true},
	},
	"NE": {
		{Week: 1, Opponent: "LV", Home: true},
		{Week: 2, Opponent: "MIA", Home: true},
		{Week: 3, Opponent: "PIT", Home: false},
		{Week: 4, Opponent: "CAR", Home: true},
		{Week: 5, Opponent: "BUF", Home: true},
		{Week: 6, Opponent: "NO", Home: false},
		{Week: 7, Opponent: "TEN", Home: false},
		{Week: 8, Opponent: "CLE", Home: false},
		{Week: 9, Opponent: "ATL", Home: true},
		{Week: 10, Opponent: "TB", Home: false},
		{Week: 11, Opponent: "NYJ", Home: false},
		{Week: 12, Opponent: "CIN", Home: true},
		{Week: 13, Opponent: "NYG", Home: false},
		{Week: 14, Opponent: "BYE", Home: false},
		{Week: 15, Opponent: "BUF", Home: false},
		{Week: 16, Opponent: "BAL", Home: false},
		{Week: 17, Opponent: "NYJ", Home: false},
		{Week: 18, Opponent: "MIA", Home: true},
	},
	"NO": {
		{Week: 1, Opponent: "ARI", Home: true},
		{Week: 2, Opponent: "SF", Home: false},
		{Week: 3, Opponent: "SEA", Home: false},
		{Week: 4, Opponent: "BUF", Home: true},
		{Week: 5, Opponent: "NYG", Home: false},
		{Week: 6, Opponent: "NE", Home: true},
		{Week: 7, Opponent: "CHI", Home: true},
		{Week: 8, Opponent: "TB", Home: false},
		{Week: 9, Opponent: "LAR", Home: true},
		{Week: 10, Opponent: "CAR", Home: false},
		{Week: 11, Opponent: "BYE", Home: false},
		{Week: 12, Opponent: "ATL", Home: true},
		{Week: 13, Opponent: "MIA", Home: true},
		{Week: 14, Opponent: "TB", Home: false},
		{Week: 15, Opponent: "CAR", Home: true},
		{Week: 16, Opponent: "NYJ", Home: false},
		{Week: 17, Opponent: "TEN", Home: false},
		{Week: 18, Opponent: "ATL", Home: false},
	},
	"NYG": {
		{Week: 1, Opponent: "WAS", Home: false},
		{Week: 2, Opponent: "DAL", Home: false},
		{Week: 3, Opponent: "KC", Home: true},
		{Week: 4, Opponent: "LAC", Home: true},
		{Week: 5, Opponent: "NO", Home: true},
		{Week: 6, Opponent: "PHI", Home: false},
		{Week: 7, Opponent: "DEN", Home: true},
		{Week: 8, Opponent: "PHI", Home: false},
		{Week: 9, Opponent: "SF", Home: false},
		{Week: 10, Opponent: "CHI", Home: true},
		{Week: 11, Opponent: "GB", Home: true},
		{Week: 12, Opponent: "DET", Home: true},
		{Week: 13, Opponent: "NE", Home: true},
		{Week: 14, Opponent: "BYE", Home: false},
		{Week: 15, Opponent: "WAS", Home: false},
		{Week: 16, Opponent: "MIN", Home: true},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "DAL", Home: true},
	},
	"NYJ": {
		{Week: 1, Opponent: "PIT", Home: true},
		{Week: 2, Opponent: "BUF", Home: true},
		{Week: 3, Opponent: "TB", Home: false},
		{Week: 4, Opponent: "MIA", Home: true},
		{Week: 5, Opponent: "DAL", Home: false},
		{Week: 6, Opponent: "DEN", Home: false},
		{Week: 7, Opponent: "CAR", Home: true},
		{Week: 8, Opponent: "CIN", Home: true},
		{Week: 9, Opponent: "BYE", Home: false},
		{Week: 10, Opponent: "CLE", Home: false},
		{Week: 11, Opponent: "NE", Home: true},
		{Week: 12, Opponent: "BAL", Home: false},
		{Week: 13, Opponent: "ATL", Home: false},
		{Week: 14, Opponent: "MIA", Home: false},
		{Week: 15, Opponent: "JAX", Home: true},
		{Week: 16, Opponent: "NO", Home: true},
		{Week: 17, Opponent: "NE", Home: true},
		{Week: 18, Opponent: "BUF", Home: true},
	},
	"PHI": {
		{Week: 1, Opponent: "DAL", Home: true},
		{Week: 2, Opponent: "KC", Home: true},
		{Week: 3, Opponent: "LAR", Home: true},
		{Week: 4, Opponent: "TB", Home: false},
		{Week: 5, Opponent: "DEN", Home: true},
		{Week: 6, Opponent: "NYG", Home: true},
		{Week: 7, Opponent: "MIN", Home: true},
		{Week: 8, Opponent: "NYG", Home: true},
		{Week: 9, Opponent: "BYE", Home: false},
		{Week: 10, Opponent: "GB", Home: true},
		{Week: 11, Opponent: "DET", Home: true},
		{Week: 12, Opponent: "DAL", Home: true},
		{Week: 13, Opponent: "CHI", Home: true},
		{Week: 14, Opponent: "LAC", Home: false},
		{Week: 15, Opponent: "LV", Home: true},
		{Week: 16, Opponent: "WAS", Home: false},
		{Week: 17, Opponent: "BUF", Home: true},
		{Week: 18, Opponent: "WAS", Home: false},
	},
	"PIT": {
		{Week: 1, Opponent: "NYJ", Home: false},
		{Week: 2, Opponent: "SEA", Home: true},
		{Week: 3, Opponent: "NE", Home: true},
		{Week: 4, Opponent: "MIN", Home: false},
		{Week: 5, Opponent: "BYE", Home: false},
		{Week: 6, Opponent: "CLE", Home: true},
		{Week: 7, Opponent: "CIN", Home: false},
		{Week: 8, Opponent: "GB", Home: true},
		{Week: 9, Opponent: "IND", Home: true},
		{Week: 10, Opponent: "LAC", Home: true},
		{Week: 11, Opponent: "CIN", Home: true},
		{Week: 12, Opponent: "CHI", Home: true},
		{Week: 13, Opponent: "BUF", Home: true},
		{Week: 14, Opponent: "BAL", Home: false},
		{Week: 15, Opponent: "MIA", Home: false},
		{Week: 16, Opponent: "DET", Home: true},
		{Week: 17, Opponent: "CLE", Home: true},
		{Week: 18, Opponent: "BAL", Home: true},
	},
	"SEA": {
		{Week: 1, Opponent: "SF", Home: false},
		{Week: 2, Opponent: "PIT", Home: false},
		{Week: 3, Opponent: "NO", Home: true},
		{Week: 4, Opponent: "ARI", Home: false},
		{Week: 5, Opponent: "TB", Home: false},
		{Week: 6, Opponent: "JAX", Home: true},
		{Week: 7, Opponent: "HOU", Home: true},
		{Week: 8, Opponent: "BYE", Home: false},
		{Week: 9, Opponent: "WAS", Home: false},
		{Week: 10, Opponent: "ARI", Home: true},
		{Week: 11, Opponent: "LAR", Home: true},
		{Week: 12, Opponent: "TEN", Home: false},
		{Week: 13, Opponent: "MIN", Home: true},
		{Week: 14, Opponent: "ATL", Home: false},
		{Week: 15, Opponent: "IND", Home: false},
		{Week: 16, Opponent: "LAR", Home: true},
		{Week: 17, Opponent: "BYE", Home: false},
		{Week: 18, Opponent: "SF", Home: true},
	},
	"SF": {
		{Week: 1, Opponent: "SEA", Home: true},
		{Week: 2, Opponent: "NO", Home: true},
		{Week: 3, Opponent: "ARI", Home: true},
		{Week: 4, Opponent: "JAX", Home: true},
		{Week: 5, Opponent: "LAR", Home: false},
		{Week: 6, Opponent: "TB", Home: false},
		{Week: 7, Opponent: "ATL", Home: true},
		{Week: 8, Opponent: "HOU", Home: true},
		{Week: 9, Opponent: "NYG", Home: false},
		{Week: 10, Opponent: "LAR", Home: true},
		{Week: 11, Opponent: "ARI", Home: false},
		{Week: 12, Opponent: "CAR", Home: true},
		{Week: 13, Opponent: "CLE", Home: false},
		{Week: 14, Opponent: "BYE", Home: false},
		{Week: 15, Opponent: "TEN", Home: false},
		{Week: 16, Opponent: "IND", Home: false},
		{Week: 17, Opponent: "CHI", Home: true},
		{Week: 18, Opponent: "SEA", Home: false},
	},
	"TB": {
		{Week: 1, Opponent: "ATL", Home: false},
		{Week: 2, Opponent: "HOU", Home: false},
		{Week: 3, Opponent: "NYJ", Home: true},
		{Week: 4, Opponent: "PHI", Home: true},
		{Week: 5, Opponent: "SEA", Home: true},
		{Week: 6, Opponent: "SF", Home: true},
		{Week: 7, Opponent: "DET", Home: true},
		{Week: 8, Opponent: "NO", Home: true},
		{Week: 9, Opponent: "BYE", Home: false},
		{Week: 10, Opponent: "NE", Home: true},
		{Week: 11, Opponent: "BUF", Home: false},
		{Week: 12, Opponent: "LAR", Home: true},
		{Week: 13, Opponent: "BYE", Home: false},
		{Week: 14, Opponent: "NO", Home: true},
		{Week: 15, Opponent: "ATL", Home: true},
		{Week: 16, Opponent: "CAR", Home: true},
		{Week: 17, Opponent: "MIA", Home: true},
		{Week: 18, Opponent: "CAR", Home: true},
	},
	"TEN": {
		{Week: 1, Opponent: "DEN", Home: false},
		{Week: 2, Opponent: "LAR", Home: true},
		{Week: 3, Opponent: "IND", Home: true},
		{Week: 4, Opponent: "HOU", Home: true},
		{Week: 5, Opponent: "ARI", Home: false},
		{Week: 6, Opponent: "LV", Home: true},
		{Week: 7, Opponent: "NE", Home: true},
		{Week: 8, Opponent: "IND", Home: true},
		{Week: 9, Opponent: "LAC", Home: true},
		{Week: 10, Opponent: "BYE", Home: false},
		{Week: 11, Opponent: "HOU", Home: true},
		{Week: 12, Opponent: "SEA", Home: true},
		{Week: 13, Opponent: "JAX", Home: false},
		{Week: 14, Opponent: "CLE", Home: true},
		{Week: 15, Opponent: "SF", Home: true},
		{Week: 16, Opponent: "KC", Home: true},
		{Week: 17, Opponent: "NO", Home: true},
		{Week: 18, Opponent: "JAX", Home: true},
	},
	"WAS": {
		{Week: 1, Opponent: "NYG", Home: true},
		{Week: 2, Opponent: "GB", Home: true},
		{Week: 3, Opponent: "LV", Home: true},
		{Week: 4, Opponent: "ATL", Home: true},
		{Week: 5, Opponent: "LAC", Home: true},
		{Week: 6, Opponent: "CHI", Home: true},
		{Week: 7, Opponent: "DAL", Home: true},
		{Week: 8, Opponent: "KC", Home: false},
		{Week: 9, Opponent: "SEA", Home: true},
		{Week: 10, Opponent: "DET", Home: true},
		{Week: 11, Opponent: "MIA", Home: false},
		{Week: 12, Opponent: "BYE", Home: false},
		{Week: 13, Opponent: "DEN", Home: true},
		{Week: 14, Opponent: "MIN", Home: true},
		{Week: 15, Opponent: "NYG", Home: true},
		{Week: 16, Opponent: "PHI", Home: true},
		{Week: 17, Opponent: "DAL", Home: true},
		{Week: 18, Opponent: "PHI", Home: true},
	},
}
