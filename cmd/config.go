package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaNotificationsTopic string
	AutoCloseCron           string
	AutoCloseWorkingHours   int
	BusinessDayStartHour    int
	BusinessDayEndHour      int
	NotifyBufferSize        int
}
