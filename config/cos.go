package config

// COSConfig 包含访问腾讯云 COS 所需的配置，用于主题配图的上传与删除
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"secret_id" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"secret_key" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"` // 格式 "name-appid"
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"` // 例如 "ap-guangzhou"
	// BaseURL 是对象的访问域名，留空时按 bucket + region 拼接默认域名
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
}
