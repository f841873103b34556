package config

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	DB            DBConfig            `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Mongo         MongoConfig         `mapstructure:"mongo"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Billing       BillingConfig       `mapstructure:"billing"`
	Notify        NotifyConfig        `mapstructure:"notify"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	KafkaConsumer KafkaConsumerTopics `mapstructure:"kafka_consumer"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// BillingConfig points at the payment provider's API. WebhookSecret
// authenticates the provider's callbacks.
type BillingConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// NotifyConfig covers the mail/SMS gateway and web-push VAPID keys.
type NotifyConfig struct {
	GatewayURL      string `mapstructure:"gateway_url"`
	GatewayKey      string `mapstructure:"gateway_key"`
	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	VAPIDSubscriber string `mapstructure:"vapid_subscriber"`
}

type LLMConfig struct {
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
}

type KafkaConsumerTopics struct {
	EngagementTopic   string `mapstructure:"engagement_topic"`
	EngagementGroupID string `mapstructure:"engagement_group_id"`
}
