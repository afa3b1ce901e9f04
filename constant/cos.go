package constant

// COS 对象键前缀
const (
	// COSObjectKeyPrefixTopicImages 是主题配图在 COS 中的对象键前缀。
	// 完整对象键示例: "forum/topics/images/20250827/<authorID>_<uuid>.jpg"
	COSObjectKeyPrefixTopicImages = "forum/topics/images/"
)
