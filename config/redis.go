package config

// RedisConfig 包含连接 Redis 所需的配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // 格式 "host:port"
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 无密码时留空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 表示使用客户端默认值
}
