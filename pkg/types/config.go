package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Token signing
	JWTSecret     string `envconfig:"JWT_SECRET"`
	TokenTTLHours uint   `envconfig:"TOKEN_TTL_HOURS" default:"8"`

	// S3 media storage
	S3BucketName   string `envconfig:"AWS_BUCKET_NAME"`
	S3BucketRegion string `envconfig:"AWS_BUCKET_REGION"`

	// Geocoding
	GeocodeBaseURL   string `envconfig:"GEOCODE_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	GeocodeUserAgent string `envconfig:"GEOCODE_USER_AGENT" default:"WeDonateApp/1.0"`

	// Third-party lookup services
	ViaCEPBaseURL    string `envconfig:"VIACEP_BASE_URL" default:"https://viacep.com.br"`
	BrasilAPIBaseURL string `envconfig:"BRASILAPI_BASE_URL" default:"https://brasilapi.com.br"`
}
