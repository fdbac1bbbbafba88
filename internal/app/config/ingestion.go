package config

// IngestionConfig drives the offline CSV-to-JSON pipeline. It is populated by
// viper from flags and INGEST_* environment variables.
type IngestionConfig struct {
	InputPath      string   `mapstructure:"input" validate:"required"`
	OutputPath     string   `mapstructure:"output" validate:"required"`
	Limit          int      `mapstructure:"limit" validate:"gte=-1"`
	Fields         []string `mapstructure:"fields" validate:"required,min=1"`
	FirstNameField string   `mapstructure:"first-name-field" validate:"required"`
	EmailDomain    string   `mapstructure:"email-domain" validate:"required"`
	Seed           uint64   `mapstructure:"seed"`
	UploadBucket   string   `mapstructure:"upload-bucket"`
	NotifyQueue    string   `mapstructure:"notify-queue"`
}

// NoLimit keeps every row of the source.
const NoLimit = -1

var DefaultIngestionFields = []string{
	"_id", "birthdate", "ssn", "prefix", "first", "last", "gender",
	"address", "city", "state", "county", "zip",
}
