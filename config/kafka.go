package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	TopicCreated    string `mapstructure:"topicCreated" yaml:"topicCreated"`       //  新主题创建事件
	PostCreated     string `mapstructure:"postCreated" yaml:"postCreated"`         //  新回帖创建事件
	TopicDeleted    string `mapstructure:"topicDeleted" yaml:"topicDeleted"`       //  主题删除事件
	UserDeactivated string `mapstructure:"userDeactivated" yaml:"userDeactivated"` //  用户注销事件 (消费)
}
