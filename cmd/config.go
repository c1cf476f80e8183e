package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	HubChannelBuffer    int
	HubSweepSchedule    string
	HubMaxDroppedStreak int64
	LocationRateLimit   float64
	LocationRateBurst   int
}
