package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	SleeperAPI  SleeperAPI
	League      League
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type SleeperAPI struct {
	BaseURL string `envconfig:"SLEEPER_BASE_URL"`
}

type League struct {
	Type         string `envconfig:"LEAGUE_TYPE" default:"redraft"`
	TeamCount    int    `envconfig:"LEAGUE_TEAMS" default:"12"`
	KeeperCount  int    `envconfig:"LEAGUE_KEEPERS" default:"0"`
	CurrentWeek  int    `envconfig:"CURRENT_WEEK" default:"1"`
	SeasonYear   int    `envconfig:"SEASON_YEAR" default:"2025"`
	FavoriteTeam string `envconfig:"FAVORITE_TEAM"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
