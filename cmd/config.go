package cmd

// Config carries the environment-driven settings for the shop backend.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	KafkaHost            string
	KafkaOrderTopic      string
	ShipmentProgressSpec string
	DeliverySurcharge    string
}
