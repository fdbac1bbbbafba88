package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		Minio    Minio
		RabbitMQ RabbitMQ
	}
	MongoDB struct {
		URI      string
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App   App
		Auth  Auth
		Cache Cache
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		TemplatePath             string
		MaxRequests              int
		RequestTimeoutInSeconds  int
		ShutdownTimeoutInSeconds int
	}

	Auth struct {
		// PasswordScheme is "plaintext" (stored passwords compared as-is) or
		// "bcrypt" (stored passwords are bcrypt hashes).
		PasswordScheme       string
		// LoginMaxAttempts per client IP within LoginWindowInSeconds before
		// the IP is blocked for LoginBlockInSeconds. Zero disables the limit.
		LoginMaxAttempts     int
		LoginWindowInSeconds int
		LoginBlockInSeconds  int
	}

	Cache struct {
		PatientTTLInSeconds int
	}
)
