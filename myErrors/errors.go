package myErrors

import "errors"

// ErrUnauthenticated 表示请求上下文中缺少用户身份，写操作在触达存储层之前即被拒绝
var ErrUnauthenticated = errors.New("auth: user identity missing")

// ErrInvalidLikeTarget 表示点赞目标不合法：必须且只能指定主题或回帖中的一个
var ErrInvalidLikeTarget = errors.New("like: exactly one of topicID or postID must be set")
