package consts

const (
	// AlertSnippetLen 提醒消息中引用的原文长度
	AlertSnippetLen = 30
	// RecentContentLimit insights 接口返回的最近内容条数
	RecentContentLimit = 10
)
